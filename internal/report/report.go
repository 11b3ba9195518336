// Package report renders parse, profile and oscillation results for human
// consumption. The analysis packages stay print-free; everything
// user-visible funnels through here or the command layer.
package report

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/datprobe/datprobe/internal/oscillation"
	"github.com/datprobe/datprobe/internal/profile"
	"github.com/datprobe/datprobe/internal/utils"
)

// Variable is one analyzed column.
type Variable struct {
	Name        string                  `yaml:"name" json:"name"`
	Samples     int                     `yaml:"samples" json:"samples"`
	Profile     profile.Characteristics `yaml:"profile" json:"profile"`
	Oscillation *oscillation.Result     `yaml:"oscillation,omitempty" json:"oscillation,omitempty"`
}

// Analysis is the full result for one file.
type Analysis struct {
	File        string     `yaml:"file" json:"file"`
	Rows        int        `yaml:"rows" json:"rows"`
	Variables   []Variable `yaml:"variables" json:"variables"`
	Diagnostics []string   `yaml:"diagnostics,omitempty" json:"diagnostics,omitempty"`
}

// Markdown renders a compact report suitable for terminals or standalone
// docs.
func (a *Analysis) Markdown() string {
	var b strings.Builder
	b.WriteString("[DAT SUMMARY]\n")
	if a.File != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", a.File))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", a.Rows))
	b.WriteString(fmt.Sprintf("Variables: %d\n\n", len(a.Variables)))

	if len(a.Variables) > 0 {
		b.WriteString("[VARIABLES]\n")
		for _, v := range a.Variables {
			b.WriteString(fmt.Sprintf("- %s: n=%d, min %.4g, max %.4g (%s)\n",
				v.Name, v.Samples, v.Profile.Min, v.Profile.Max, v.Profile.Reason))
		}
	}

	var osc []Variable
	for _, v := range a.Variables {
		if v.Oscillation != nil {
			osc = append(osc, v)
		}
	}
	if len(osc) > 0 {
		b.WriteString("\n[OSCILLATION]\n")
		for _, v := range osc {
			r := v.Oscillation
			if r.HasOscillation {
				b.WriteString(fmt.Sprintf("- %s: frequency %.6g via %s (confidence %.2f)\n",
					v.Name, r.Frequency, r.Method, r.Confidence))
			} else {
				// Downstream must treat this as "omit annotation", not
				// as an error.
				b.WriteString(fmt.Sprintf("- %s: no oscillation detected (%s)\n", v.Name, r.Method))
			}
		}
	}

	if len(a.Diagnostics) > 0 {
		b.WriteString("\n[DIAGNOSTICS]\n")
		for _, d := range a.Diagnostics {
			b.WriteString(fmt.Sprintf("- %s\n", d))
		}
	}
	return b.String()
}

// YAML renders the analysis as YAML.
func (a *Analysis) YAML() ([]byte, error) {
	b, err := yaml.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	return b, nil
}

// JSON renders the analysis as indented JSON.
func (a *Analysis) JSON() ([]byte, error) {
	return utils.PrettyJSON(a)
}
