package assets

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	_ "golang.org/x/image/webp"

	"shootinggallery/internal/targets"
)

// Directory names under the assets root, one per tier.
var tierDirs = map[targets.Tier]string{
	targets.Small:  "toprow",
	targets.Medium: "middlerow",
	targets.Large:  "bottomrow",
}

// Catalog lists the target images found under one directory. A visual id is
// the image's slash-separated path relative to that directory, for example
// "toprow/duck.png".
type Catalog struct {
	root    string
	visuals targets.VisualPool
}

// Load scans the tier directories under root. Missing directories and files
// that do not decode as an image are logged and skipped; Load never fails.
func Load(root string) *Catalog {
	c := &Catalog{
		root:    root,
		visuals: make(targets.VisualPool),
	}
	for _, tier := range targets.Tiers {
		dir := tierDirs[tier]
		entries, err := os.ReadDir(filepath.Join(root, dir))
		if err != nil {
			log.Printf("[Assets] No images for %s targets: %v", tier, err)
			continue
		}
		for _, e := range entries {
			if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
				continue
			}
			id := path.Join(dir, e.Name())
			if err := probe(filepath.Join(root, dir, e.Name())); err != nil {
				log.Printf("[Assets] Skipping %s: %v", id, err)
				continue
			}
			c.visuals[tier] = append(c.visuals[tier], id)
		}
		sort.Strings(c.visuals[tier])
	}
	return c
}

func probe(file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, _, err := image.DecodeConfig(f); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

// Visuals returns the visual pool for a targets.Factory.
func (c *Catalog) Visuals() targets.VisualPool {
	pool := make(targets.VisualPool, len(c.visuals))
	for tier, ids := range c.visuals {
		pool[tier] = append([]string(nil), ids...)
	}
	return pool
}

// Manifest returns the visual ids keyed by tier name, for clients that fetch
// the images themselves.
func (c *Catalog) Manifest() map[string][]string {
	m := make(map[string][]string, len(targets.Tiers))
	for _, tier := range targets.Tiers {
		m[tier.String()] = append([]string{}, c.visuals[tier]...)
	}
	return m
}

func (c *Catalog) Count() int {
	n := 0
	for _, ids := range c.visuals {
		n += len(ids)
	}
	return n
}

// Path maps a visual id back to a file path.
func (c *Catalog) Path(id string) string {
	return filepath.Join(c.root, filepath.FromSlash(id))
}

// Decode reads and decodes one catalogued image.
func (c *Catalog) Decode(id string) (image.Image, error) {
	f, err := os.Open(c.Path(id))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", id, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", id, err)
	}
	return img, nil
}
