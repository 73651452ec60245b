package content

import (
	"fmt"
	"sync"

	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/Soskid107/Hikma-bot-sub000/internal/models"
)

//go:embed content.yaml
var rawTables []byte

// Table holds the static content for one goal: a fixed checklist plus
// parallel lists that cycle by program day.
type Table struct {
	Focus          string   `yaml:"focus"`
	Checklist      []string `yaml:"checklist"`
	Tips           []string `yaml:"tips"`
	Quotes         []string `yaml:"quotes"`
	JournalPrompts []string `yaml:"journal_prompts"`
}

var (
	tablesOnce sync.Once
	tables     map[models.Goal]Table
	tablesErr  error
)

// goalTables parses the embedded YAML once. The asset ships with the binary,
// so a parse failure is a build defect and panics at first use.
func goalTables() map[models.Goal]Table {
	tablesOnce.Do(func() {
		parsed := make(map[models.Goal]Table)
		if err := yaml.Unmarshal(rawTables, &parsed); err != nil {
			tablesErr = fmt.Errorf("content: parse embedded tables: %w", err)
			return
		}
		for goal, t := range parsed {
			if len(t.Checklist) == 0 || len(t.Tips) == 0 || len(t.Quotes) == 0 || len(t.JournalPrompts) == 0 {
				tablesErr = fmt.Errorf("content: table %q is missing entries", goal)
				return
			}
		}
		if _, ok := parsed[models.GoalGeneral]; !ok {
			tablesErr = fmt.Errorf("content: general fallback table missing")
			return
		}
		tables = parsed
	})
	if tablesErr != nil {
		panic(tablesErr)
	}
	return tables
}
