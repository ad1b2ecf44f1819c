package countries

import (
	"embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/countries.yml
var dataFS embed.FS

const defaultListPath = "data/countries.yml"

// Country is one dial-code entry from the dataset.
type Country struct {
	Name     string `yaml:"name" json:"name"`
	ISO      string `yaml:"iso" json:"iso"`
	DialCode string `yaml:"dial" json:"dial"`
}

var (
	defaultOnce sync.Once
	defaultList []Country
	defaultErr  error
)

func DefaultCountries() ([]Country, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultListPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		list, err := LoadCountries(f)
		if err != nil {
			defaultErr = err
			return
		}
		defaultList = list
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]Country{}, defaultList...), nil
}

func LoadCountries(r io.Reader) ([]Country, error) {
	if r == nil {
		return nil, fmt.Errorf("countries: missing reader")
	}

	var raw []Country
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("countries: decode dataset: %w", err)
	}

	list := make([]Country, 0, len(raw))
	seen := map[string]struct{}{}
	for _, c := range raw {
		c.Name = strings.TrimSpace(c.Name)
		c.ISO = strings.ToUpper(strings.TrimSpace(c.ISO))
		c.DialCode = strings.TrimSpace(c.DialCode)
		if c.Name == "" || c.ISO == "" || c.DialCode == "" {
			return nil, fmt.Errorf("countries: incomplete entry %+v", c)
		}
		if _, ok := seen[c.ISO]; ok {
			continue
		}
		seen[c.ISO] = struct{}{}
		list = append(list, c)
	}

	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}
