// Command baseinfo prints the runtime library's version identity and
// its canonical status registry.
package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Browse-holdings/wuffs"
	"github.com/Browse-holdings/wuffs/status"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	suspensionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))
)

func main() {
	fmt.Println(titleStyle.Render("base runtime"))
	fmt.Println()

	display := wuffs.VersionString
	if wuffs.VersionExtension != "" {
		display += "-" + wuffs.VersionExtension
	}
	fmt.Printf("%s %s\n", labelStyle.Render("version:"), display)
	fmt.Printf("%s 0x%016X\n", labelStyle.Render("packed: "), wuffs.Version)
	if wuffs.Version == 0 {
		fmt.Println(labelStyle.Render("        ") +
			" development snapshot, no compatibility guarantee")
	}
	fmt.Println()

	fmt.Println(labelStyle.Render("canonical statuses:"))
	for _, st := range []status.Status{
		status.SuspensionShortRead,
		status.SuspensionShortWrite,
		status.ErrBadArgument,
		status.ErrBadVersion,
		status.ErrCannotReturnSuspension,
		status.ErrClosedForWrites,
		status.ErrUnexpectedEOF,
		status.WarnEndOfData,
	} {
		var style lipgloss.Style
		switch st.Category() {
		case status.CategorySuspension:
			style = suspensionStyle
		case status.CategoryError:
			style = errorStyle
		default:
			style = warningStyle
		}
		fmt.Printf("  %s %s\n",
			style.Render(fmt.Sprintf("%-10s", st.Category())), st.Message())
	}
}
