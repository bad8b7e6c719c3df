package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/montge/bannerkit/banner"
	"github.com/montge/bannerkit/config"
	"github.com/montge/bannerkit/logger"
	"github.com/montge/bannerkit/marking"
)

// ParseCmd decodes a banner marking line.
var ParseCmd = &cobra.Command{
	Use:   "parse BANNER",
	Short: "Decode a banner marking line",
	Long: `Decode a classification banner marking into its structured controls.

The banner is split on // into segments: the classification level first, then
SCI, SAP, and dissemination control segments in any order.

Examples:
  bannerkit parse 'TOP SECRET//SI-TK ALFA BRAVO//NOFORN/ORCON'
  bannerkit parse --json 'SECRET//SAR-BP/GB'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		b, err := banner.Parse(args[0])
		if err != nil {
			return err
		}
		logger.Debugw("banner parsed", "banner", args[0], "canonical", b.String())

		if jsonOutput || cfg.Output.Format == "json" {
			return printParseJSON(cmd, b)
		}
		printParseTable(b)
		return nil
	},
}

func init() {
	ParseCmd.Flags().BoolP("json", "j", false, "Output parse result as JSON")
}

// sciView is the JSON shape of one SCI control.
type sciView struct {
	Control      string              `json:"control"`
	Compartments map[string][]string `json:"compartments"`
}

// sapView is the JSON shape of a SAP control.
type sapView struct {
	Programs []string `json:"programs"`
	Multiple bool     `json:"multiple"`
	Hvsaco   bool     `json:"hvsaco"`
}

// parseView is the JSON shape of a decoded banner.
type parseView struct {
	Classification string    `json:"classification"`
	Sci            []sciView `json:"sci,omitempty"`
	Sap            *sapView  `json:"sap,omitempty"`
	Dissem         []string  `json:"dissemination,omitempty"`
	Other          []string  `json:"other_dissemination,omitempty"`
	FreeText       []string  `json:"free_text,omitempty"`
	Canonical      string    `json:"canonical"`
}

func newParseView(b *banner.Banner) parseView {
	view := parseView{
		Classification: b.Classification.String(),
		FreeText:       b.FreeText,
		Canonical:      b.String(),
	}
	for _, sci := range b.Sci {
		comps := sci.Compartments()
		m := make(map[string][]string, comps.Len())
		for _, name := range comps.Names() {
			subs, _ := comps.Subs(name)
			m[name] = subs
		}
		view.Sci = append(view.Sci, sciView{Control: sci.Control(), Compartments: m})
	}
	if b.Sap != nil {
		view.Sap = &sapView{
			Programs: b.Sap.Programs(),
			Multiple: b.Sap.IsMultiple(),
			Hvsaco:   b.Sap.IsHvsaco(),
		}
	}
	for _, c := range b.Dissem {
		view.Dissem = append(view.Dissem, c.String())
	}
	for _, c := range b.Other {
		view.Other = append(view.Other, c.String())
	}
	return view
}

func printParseJSON(cmd *cobra.Command, b *banner.Banner) error {
	out, err := json.MarshalIndent(newParseView(b), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func printParseTable(b *banner.Banner) {
	pterm.DefaultHeader.Printf("%s", b.String())
	pterm.Println()

	rows := pterm.TableData{{"Segment", "Parsed"}}
	rows = append(rows, []string{"Classification", b.Classification.String()})
	for _, sci := range b.Sci {
		rows = append(rows, []string{"SCI", sci.String()})
	}
	if b.Sap != nil {
		rows = append(rows, []string{"SAP", b.Sap.String()})
	}
	for _, c := range b.Dissem {
		rows = append(rows, []string{"Dissemination", fmt.Sprintf("%s (%s)", c, marking.DisseminationControls.Portion(c))})
	}
	for _, c := range b.Other {
		rows = append(rows, []string{"Other dissem", fmt.Sprintf("%s (%s)", c, marking.OtherDissemControls.Portion(c))})
	}
	for _, run := range b.FreeText {
		rows = append(rows, []string{"Text run", run})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		pterm.Error.Println(err)
	}
}
