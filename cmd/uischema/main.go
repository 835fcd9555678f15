// cmd/uischema loads an admin UI schema document and prints what the
// resolver makes of it.
//
// The document may be JSON, YAML, a CUE file or a directory holding a CUE
// package. An optional override document is merged on top of it with the
// override's values winning, the same way an application layers remote
// schema on top of its local defaults.
//
//	uischema views schema.yaml                 # every model, as JSON
//	uischema views schema.cue User Post        # selected models
//	uischema views -o gen/ui schema.json       # one <model_name>.view.json per model
//	uischema models schema.json                # model names and labels
package main

import (
	"log"

	"github.com/spf13/cobra"
)

var (
	overridePath string
	cuePath      string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:           "uischema",
	Short:         "Inspect resolved admin UI schemas",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&overridePath, "override", "", "document merged on top of the input, its values winning")
	rootCmd.PersistentFlags().StringVar(&cuePath, "cue-path", "", "CUE path of the document inside a CUE package directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log merge traces")
	rootCmd.AddCommand(viewsCmd, modelsCmd)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("uischema: ")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
