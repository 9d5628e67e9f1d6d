package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/diillson/cpm-dashboard-go/internal/domain/entity"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
          /$$$$$$  /$$$$$$$  /$$      /$$
         /$$__  $$| $$__  $$| $$$    /$$$
        | $$  \__/| $$  \ $$| $$$$  /$$$$
        | $$      | $$$$$$$/| $$ $$/$$ $$
        | $$      | $$____/ | $$  $$$| $$
        | $$    $$| $$      | $$\  $ | $$
        |  $$$$$$/| $$      | $$ \/  | $$
         \______/ |__/      |__/     |__/
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))
	fmt.Println(blue(fmt.Sprintf("%s (v%s)", entity.DashboardTitle, versionStr)))
	fmt.Println(entity.DashboardDescription)
}
