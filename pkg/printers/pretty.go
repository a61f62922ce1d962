package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/almanac-sh/almanac/pkg/category"
	"github.com/almanac-sh/almanac/pkg/event"
)

type PrettyPrint struct {
	ShowID bool

	// Categories resolves category keys to names; dangling keys render
	// as the raw key.
	Categories []*category.Category
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" event")
	default:
		_, _ = c.Println(" events")
	}
}

// Day prints one day's events as an agenda table.
func (pp *PrettyPrint) Day(events ...*event.Event) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range events {
		window, title, cat := e.Row()
		cat = category.DisplayName(pp.Categories, cat)
		if pp.ShowID {
			tbl.AddRow(y.Sprint(e.ID), window, title, cat)
		} else {
			tbl.AddRow(window, title, cat)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// CategoryList prints the category catalog.
func (pp *PrettyPrint) CategoryList(categories ...*category.Category) {
	if len(categories) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("ID"), bold("Name"), bold("Color"))
	for _, c := range categories {
		tbl.AddRow(c.ID, c.Name, c.Color)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}
