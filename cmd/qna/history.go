package main

import (
	"fmt"

	"github.com/fwojciec/qna"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	searches, err := deps.History.RecentSearches(deps.Ctx, c.N)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qna.ErrorMessage(err))
		return err
	}

	if len(searches) == 0 {
		fmt.Fprintln(deps.Stdout, "No searches yet. Use 'qna ask' to make one.")
		return nil
	}

	for _, s := range searches {
		fmt.Fprintf(deps.Stdout, "%s  %3d results  %s\n",
			s.CreatedAt.Local().Format("2006-01-02 15:04"), s.Results, s.Query)

		if !c.Pages {
			continue
		}
		pages, err := deps.History.FindPagesBySearch(deps.Ctx, s.ID)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", qna.ErrorMessage(err))
			return err
		}
		for _, p := range pages {
			fmt.Fprintf(deps.Stdout, "    [%d] %s\n", p.Position, p.URL)
		}
	}

	return nil
}
