package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/almanac-sh/almanac/pkg/category"
	"github.com/almanac-sh/almanac/pkg/theme"
)

// Persistence is the key-value settings store behind categories and
// themes. Event data itself lives in the calendar file; see Calendar.
type Persistence interface {
	Categories() []*category.Category
	Category(id string) (*category.Category, bool)
	StoreCategory(c *category.Category) error
	DeleteCategory(id string) error

	Themes() []*theme.Definition
	StoreTheme(d *theme.Definition) error
	ActiveTheme() string
	SetActiveTheme(name string) error
}

const (
	bucketCategories = "categories"
	bucketThemes     = "themes"
	settingsThemeKey = "settings/theme"
)

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Categories() []*category.Category {
	all := make([]*category.Category, 0)
	for key := range p.d.Keys(nil) {
		if !strings.HasPrefix(key, bucketCategories+"/") {
			continue
		}
		c, err := p.readCategory(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, c)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})
	return all
}

func (p *persistence) Category(id string) (*category.Category, bool) {
	c, err := p.readCategory(bucketCategories + "/" + id)
	if err != nil {
		return nil, false
	}
	return c, true
}

func (p *persistence) StoreCategory(c *category.Category) error {
	if c == nil || strings.TrimSpace(c.ID) == "" {
		return errors.New("store: category id required")
	}
	if err := category.ValidateName(c.Name); err != nil {
		return err
	}
	if err := category.ValidateColor(c.Color); err != nil {
		return err
	}
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return p.d.Write(bucketCategories+"/"+c.ID, data)
}

func (p *persistence) DeleteCategory(id string) error {
	// Events referencing this id keep it; they render the raw key.
	return p.d.Erase(bucketCategories + "/" + id)
}

func (p *persistence) Themes() []*theme.Definition {
	all := make([]*theme.Definition, 0)
	for key := range p.d.Keys(nil) {
		if !strings.HasPrefix(key, bucketThemes+"/") {
			continue
		}
		val, err := p.d.Read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		d := &theme.Definition{}
		if err := json.Unmarshal(val, d); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, d)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})
	return all
}

func (p *persistence) StoreTheme(d *theme.Definition) error {
	if d == nil {
		return errors.New("store: theme required")
	}
	if err := d.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return p.d.Write(bucketThemes+"/"+strings.ToLower(d.Name), data)
}

func (p *persistence) ActiveTheme() string {
	val, err := p.d.Read(settingsThemeKey)
	if err != nil {
		return theme.DefaultName
	}
	name := strings.TrimSpace(string(val))
	if name == "" {
		return theme.DefaultName
	}
	return name
}

func (p *persistence) SetActiveTheme(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("store: theme name required")
	}
	if _, ok := theme.Find(p.Themes(), name); !ok {
		return fmt.Errorf("store: unknown theme %q", name)
	}
	return p.d.Write(settingsThemeKey, []byte(name))
}

func (p *persistence) readCategory(key string) (*category.Category, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	c := &category.Category{}
	if err := json.Unmarshal(val, c); err != nil {
		return nil, err
	}
	if c.ID == "" {
		c.ID = keyToPathTransform(key).FileName
	}
	return c, nil
}

// Keys look like `bucket/id`; on disk each bucket is a directory.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return strings.Join(pathKey.Path, "/") + "/" + pathKey.FileName
}
