package main

import (
	"fmt"
	"log"
	"os"

	"github.com/getlantern/errors"
	"github.com/pkg/profile"
	"github.com/unixpickle/charlm"
	"gopkg.in/urfave/cli.v1"
)

const samplePreviewLength = 120

func main() {
	app := cli.NewApp()
	app.Name = "charlm"
	app.Usage = "train character-level LSTM language models and sample text from them"
	app.Version = "0.1.0"
	app.Commands = []cli.Command{
		{
			Name:  "train",
			Usage: "Train a model on a text corpus",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "in",
					Usage: "Path to the corpus text `file`",
				},
				cli.StringFlag{
					Name:  "load",
					Usage: "Optional `file` path of an existing model to resume",
				},
				cli.StringFlag{
					Name:  "save",
					Value: "model.charlm",
					Usage: "`file` path to save the model",
				},
				cli.IntFlag{
					Name:  "window",
					Value: 40,
					Usage: "Input window `length` in characters",
				},
				cli.IntFlag{
					Name:  "stride",
					Value: 3,
					Usage: "Window `stride` in characters",
				},
				cli.IntFlag{
					Name:  "hidden",
					Value: 128,
					Usage: "Hidden layer `size`",
				},
				cli.Float64Flag{
					Name:  "step",
					Value: 0.001,
					Usage: "SGD step size",
				},
				cli.IntFlag{
					Name:  "batch",
					Value: 128,
					Usage: "Mini-batch size",
				},
				cli.IntFlag{
					Name:  "epochs",
					Value: 10,
					Usage: "Number of training epochs",
				},
			},
			Action: trainCommand,
		},
		{
			Name:  "sample",
			Usage: "Generate text from an existing model",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "load",
					Usage: "`file` path of the model",
				},
				cli.StringFlag{
					Name:  "seed",
					Usage: "Seed `text` to extend",
				},
				cli.Float64Flag{
					Name:  "temperature",
					Value: 1.0,
					Usage: "Sampling temperature (low = conservative, high = diverse)",
				},
				cli.IntFlag{
					Name:  "length",
					Value: 400,
					Usage: "Number of characters to generate",
				},
			},
			Action: sampleCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func trainCommand(c *cli.Context) error {
	// cpu or mem profiling via the PERF environment variable
	switch os.Getenv("PERF") {
	case "cpu":
		defer profile.Start(profile.CPUProfile).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile).Stop()
	}

	corpusPath := c.String("in")
	if corpusPath == "" {
		return errors.New("missing required corpus path: --in")
	}
	corpus, err := charlm.ReadCorpus(corpusPath)
	if err != nil {
		return errors.Wrap(err)
	}

	var model *charlm.Model
	if loadPath := c.String("load"); loadPath != "" {
		model, err = charlm.ReadModel(loadPath)
		if err != nil {
			return errors.Wrap(err)
		}
		log.Printf("loaded model: vocab=%d window=%d", model.Vocab.Size(),
			model.WindowSize)
	} else {
		vocab := charlm.NewVocab(corpus)
		model = charlm.NewModel(vocab, c.Int("window"), c.Int("hidden"))
		log.Printf("new model: vocab=%d window=%d hidden=%d", vocab.Size(),
			c.Int("window"), c.Int("hidden"))
	}
	log.Printf("corpus: %d characters, %d distinct", corpus.Len(),
		len(corpus.Alphabet()))

	samples, err := charlm.NewSampleSet(corpus, model.Vocab, model.WindowSize,
		c.Int("stride"))
	if err != nil {
		return errors.Wrap(err)
	}
	log.Printf("training on %d windows (stride %d)", samples.Len(), c.Int("stride"))

	generator := &charlm.Generator{
		Model:   model,
		Sampler: &charlm.Sampler{Temperature: 1},
	}
	seed := string(corpus.Slice(0, model.WindowSize))
	model.Train(samples, c.Float64("step"), c.Int("batch"), c.Int("epochs"),
		func(epoch int, cost float64) {
			log.Printf("epoch %d: cost=%f", epoch, cost)
			preview, err := generator.Generate(seed, samplePreviewLength)
			if err != nil {
				log.Printf("epoch %d: preview failed: %s", epoch, err)
				return
			}
			fmt.Println("  " + preview)
		})

	if err := model.WriteFile(c.String("save")); err != nil {
		return errors.Wrap(err)
	}
	log.Printf("saved model to %s", c.String("save"))
	return nil
}

func sampleCommand(c *cli.Context) error {
	loadPath := c.String("load")
	if loadPath == "" {
		return errors.New("missing required model path: --load")
	}
	model, err := charlm.ReadModel(loadPath)
	if err != nil {
		return errors.Wrap(err)
	}
	seed := c.String("seed")
	if seed == "" {
		return errors.New("missing required seed text: --seed")
	}
	generator := &charlm.Generator{
		Model:   model,
		Sampler: &charlm.Sampler{Temperature: c.Float64("temperature")},
	}
	text, err := generator.Generate(seed, c.Int("length"))
	if err != nil {
		return errors.Wrap(err)
	}
	fmt.Println(seed + text)
	return nil
}
