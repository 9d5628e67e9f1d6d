package usecase

import (
	"context"

	"github.com/diillson/cpm-dashboard-go/internal/domain/entity"
)

const (
	actionPeriod   = "Período"
	actionUnit     = "Unidade"
	actionCurrency = "Moeda"
	actionApply    = "Aplicar filtros"
	actionTicker   = "Notícias"
	actionExport   = "Exportar relatórios"
	actionQuit     = "Sair"
)

// RunInteractive mantém o painel aberto, permitindo trocar filtros até o usuário sair.
func (uc *DashboardUseCase) RunInteractive(ctx context.Context, page *Page, settings *Settings) error {
	variant := page.Variant()
	for {
		view, err := page.View(ctx)
		if err != nil {
			return err
		}
		if err := uc.RenderDashboard(view); err != nil {
			return err
		}

		choice, err := uc.console.Select("Ação", menuFor(variant, settings), actionApply)
		if err != nil {
			return err
		}

		switch choice {
		case actionPeriod:
			err = uc.selectPeriod(page)
		case actionUnit:
			err = uc.selectOption(page.Selection().Unit, variant.Units, actionUnit, page.SetUnit)
		case actionCurrency:
			err = uc.selectOption(page.Selection().Currency, variant.Currencies, actionCurrency, page.SetCurrency)
		case actionApply:
			page.ApplyFilters()
			status := uc.console.Status("Aplicando...")
			err = page.WaitIdle(ctx)
			status.Stop()
		case actionTicker:
			uc.RunTicker(ctx, settings, 1)
		case actionExport:
			uc.ExportReports(ctx, view, settings)
		case actionQuit:
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			uc.console.LogError("%s", err)
		}
	}
}

func menuFor(variant entity.Variant, settings *Settings) []string {
	menu := []string{actionPeriod}
	if variant.HasUnits() {
		menu = append(menu, actionUnit)
	}
	if len(variant.Currencies) > 1 {
		menu = append(menu, actionCurrency)
	}
	menu = append(menu, actionApply, actionTicker)
	if settings.ReportName != "" {
		menu = append(menu, actionExport)
	}
	return append(menu, actionQuit)
}

func (uc *DashboardUseCase) selectPeriod(page *Page) error {
	variant := page.Variant()
	titles := make([]string, len(variant.Periods))
	byTitle := make(map[string]entity.Period, len(variant.Periods))
	current := ""
	for i, p := range variant.Periods {
		spec, _ := entity.LookupPeriod(p)
		titles[i] = spec.Title
		byTitle[spec.Title] = p
		if p == page.Selection().Period {
			current = spec.Title
		}
	}
	choice, err := uc.console.Select(actionPeriod, titles, current)
	if err != nil {
		return err
	}
	return page.SetPeriod(byTitle[choice])
}

func (uc *DashboardUseCase) selectOption(current string, options []string, label string, set func(string) error) error {
	choice, err := uc.console.Select(label, options, current)
	if err != nil {
		return err
	}
	return set(choice)
}
