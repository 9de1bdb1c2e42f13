/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"math/rand"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	pimage "github.com/mmuldo/palettegen/image"
	"github.com/mmuldo/palettegen/palette"
	"github.com/mmuldo/palettegen/theme"
)

var (
	size        int
	seed        int64
	startColors []string
	imagePath   string
	imageColors int
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Searches for a palette of maximally distinguishable colors",
	Long: `Searches for a palette of colors that are maximally distinguishable
from one another, including under simulated color vision deficiencies, while
staying close to the configured reference colors. Reference colors come from
the config file ('targets') or are extracted from an image with --image.`,
	Run: func(cmd *cobra.Command, args []string) {
		o := palette.New()
		o.Weights = weightsFromConfig()
		o.Temperature = viper.GetFloat64("temperature")
		o.CoolingRate = viper.GetFloat64("cooling")
		o.Cutoff = viper.GetFloat64("cutoff")

		if targets, e := loadTargets(); e != nil {
			log.Fatal(e)
		} else if targets != nil {
			o.Targets = targets
		}

		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		o.Rand = rand.New(rand.NewSource(seed))

		start, e := palette.ParseAll(startColors)
		if e != nil {
			log.Fatal(e)
		}
		if len(start) == 0 {
			log.Infof("generating %d random starting colors", size)
			start = make([]palette.Color, size)
			for i := range start {
				start[i] = palette.Random(o.Rand)
			}
		}

		o.Progress = func(iteration int, cost float64) {
			log.WithFields(log.Fields{
				"run":  iteration,
				"cost": cost,
			}).Debug("optimizing")
		}

		ev := &palette.Evaluator{Weights: o.Weights, Targets: o.Targets}
		startCost := ev.Cost(start)

		final, e := o.Optimize(size, start)
		if e != nil {
			log.Fatal(e)
		}
		finalCost := ev.Cost(final)

		theme.Preview(os.Stdout, start, final)
		log.Infof("cost: %.2f -> %.2f (improved by %.2f)", startCost, finalCost, startCost-finalCost)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&size, "size", "n", 8, "number of colors to generate")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 seeds from the clock)")
	generateCmd.Flags().StringSliceVar(&startColors, "start", nil, "starting colors in '#RRGGBB' form; must match --size")
	generateCmd.Flags().StringVar(&imagePath, "image", "", "extract reference colors from this image instead of config")
	generateCmd.Flags().IntVar(&imageColors, "image-colors", 5, "number of reference colors to extract with --image")
}

// weightsFromConfig assembles cost weights from viper, falling back to the
// stock weighting.
func weightsFromConfig() palette.Weights {
	return palette.Weights{
		Energy:       viper.GetFloat64("weights.energy"),
		Target:       viper.GetFloat64("weights.target"),
		Range:        viper.GetFloat64("weights.range"),
		Protanopia:   viper.GetFloat64("weights.protanopia"),
		Deuteranopia: viper.GetFloat64("weights.deuteranopia"),
		Tritanopia:   viper.GetFloat64("weights.tritanopia"),
	}
}

// loadTargets resolves the reference palette: extracted from an image if
// --image was given, otherwise the 'targets' config list. A nil return with
// no error means the caller should keep the defaults.
func loadTargets() ([]palette.Color, error) {
	if imagePath != "" {
		return pimage.Extract(imagePath, imageColors)
	}

	hexes := viper.GetStringSlice("targets")
	if len(hexes) == 0 {
		return nil, nil
	}
	return palette.ParseAll(hexes)
}
