package categories

import (
	"context"
	"errors"
	"fmt"

	"github.com/almanac-sh/almanac/pkg/category"
	"github.com/almanac-sh/almanac/pkg/printers"
	"github.com/almanac-sh/almanac/pkg/store"
)

type List struct {
	JSON bool

	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list categories, no persistence")
	}

	if n.JSON {
		b, err := category.MarshalList(n.Persistence.Categories())
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Categories")
	pp.CategoryList(n.Persistence.Categories()...)
	return nil
}

type Add struct {
	Name  string
	Color string // optional hex accent

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add category, no persistence")
	}

	c := category.New(n.Name)
	c.Color = n.Color
	if err := n.Persistence.StoreCategory(c); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Categories")
	pp.CategoryList(n.Persistence.Categories()...)
	return nil
}

type Remove struct {
	ID string

	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove category, no persistence")
	}
	if n.ID == "" {
		return errors.New("a category id is required")
	}
	if _, ok := n.Persistence.Category(n.ID); !ok {
		return fmt.Errorf("no category with id %q", n.ID)
	}
	// Events keep the key; agendas render the raw id from here on.
	return n.Persistence.DeleteCategory(n.ID)
}
