package main

import (
	"fmt"

	"github.com/standardbeagle/lexmatch/internal/index"

	"github.com/urfave/cli/v2"
)

func indexCommand(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}
	corpus, err := loadCorpus(cfg)
	if err != nil {
		return err
	}
	if _, err := compileAll(cfg, corpus); err != nil {
		return err
	}

	for _, phrase := range corpus.Phrases {
		root := phrase.Root()
		fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\t0\n", phrase.Label, root.Lemma, index.RootLemmaMatchType)
		for _, wi := range phrase.WordInformation() {
			fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\t%d\n", phrase.Label, wi.Word, wi.MatchType, wi.Depth)
		}
	}
	return nil
}
