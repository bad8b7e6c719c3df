package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/montge/bannerkit/marking"
)

// VocabCmd lists the control vocabularies.
var VocabCmd = &cobra.Command{
	Use:   "vocab [dissem|other|class]",
	Short: "List the control vocabularies",
	Long: `List the fixed control vocabularies: canonical identifier, primary banner
name, and primary portion marking for each control.

With no argument all three vocabularies are listed.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"dissem", "other", "class"},
	RunE: func(cmd *cobra.Command, args []string) error {
		which := ""
		if len(args) == 1 {
			which = args[0]
		}

		if which == "" || which == "dissem" {
			renderVocab("Dissemination controls", marking.DisseminationControls)
		}
		if which == "" || which == "other" {
			renderVocab("Other dissemination controls", marking.OtherDissemControls)
		}
		if which == "" || which == "class" {
			renderVocab("Classification levels", marking.Classifications)
		}
		return nil
	},
}

func renderVocab[T comparable](title string, r *marking.Registry[T]) {
	pterm.DefaultSection.Println(title)

	rows := pterm.TableData{{"Identifier", "Banner name", "Portion marking"}}
	for _, ident := range r.Idents() {
		v, err := r.ValueOf(ident)
		if err != nil {
			// Idents come from the registry itself; a miss is a table bug.
			pterm.Error.Println(err)
			continue
		}
		rows = append(rows, []string{ident, r.Name(v), r.Portion(v)})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		pterm.Error.Println(err)
	}
}
