package components

import "github.com/litebase/csvpager/pkg/cli/styles"

func ErrorAlert(message string) string {
	return styles.AlertDangerStyle.Render(message)
}

func InfoAlert(message string) string {
	return styles.AlertInfoStyle.Render(message)
}

func SuccessAlert(message string) string {
	return styles.AlertSuccessStyle.Render(message)
}
