/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/palettegen/palette"
	"github.com/mmuldo/palettegen/theme"
)

var (
	templatePath string
	outPath      string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [colors...]",
	Short: "Renders a palette through a template",
	Long: `Renders a palette through a template. Each color is exposed to the
template as color0, color1, ... in argument order, along with background,
foreground, and transparency defaults.

Colors are given as '#RRGGBB' arguments:

  palettegen export -t templates/config -o ~/.config/termite/config "#1d2021" "#ebdbb2"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		colors, e := palette.ParseAll(args)
		if e != nil {
			log.Fatal(e)
		}

		if templatePath == "" {
			templatePath = viper.GetString("template")
		}
		if templatePath == "" {
			log.Fatal("no template given; use --template or set 'template' in config")
		}

		t := theme.New(colors, nil)
		if e := t.Render(templatePath, outPath); e != nil {
			log.Fatal(e)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&templatePath, "template", "t", "", "template file to render")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "theme.out", "file to write the rendered theme to")
}
