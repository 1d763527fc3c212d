package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/litebase/csvpager/pkg/cli"
)

var PrimaryBackgroundColor = cli.LightDark(cli.Sky500, cli.Sky300)
var PrimaryForegroundColor = cli.LightDark(cli.White, cli.Black)
var TextColor = cli.LightDark(cli.Black, cli.White)
var MutedTextColor = cli.LightDark(cli.Gray500, cli.Gray300)

var TitleStyle = lipgloss.NewStyle().Bold(true).Margin(0, 0, 1)

var alertStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

var AlertSuccessStyle = alertStyle.
	Background(cli.LightDark(cli.Green700, cli.Green200)).
	Foreground(cli.LightDark(cli.White, cli.Black))

var AlertInfoStyle = alertStyle.
	Background(cli.LightDark(cli.Gray300, cli.Gray500)).
	Foreground(cli.LightDark(cli.Gray900, cli.White))

var AlertDangerStyle = alertStyle.
	Background(cli.LightDark(cli.Red700, cli.Red500)).
	Foreground(cli.LightDark(cli.White, cli.White))

var TableBorderStyle = lipgloss.NewStyle().Foreground(cli.LightDark(cli.Gray300, cli.Gray500))
var TableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(cli.LightDark(cli.Sky700, cli.Sky300))
var TableCellStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(TextColor)

var StatusStyle = lipgloss.NewStyle().Foreground(MutedTextColor)
