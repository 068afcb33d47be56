package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/lox/draftforbots/draft"
	"github.com/lox/draftforbots/internal/catalog"
	"github.com/lox/draftforbots/internal/game"
)

type CatalogCmd struct {
	Validate CatalogValidateCmd `cmd:"" help:"Check a catalog against table sizes"`
	Show     CatalogShowCmd     `cmd:"" help:"List a catalog's cards and companies"`
}

// openCatalog returns the built-in set, or a parsed catalog file when a
// path is given.
func openCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Base(), nil
	}
	return catalog.Load(path)
}

// loadCatalog opens a catalog and validates it for one table size.
func loadCatalog(path string, players int) (*catalog.Catalog, error) {
	cat, err := openCatalog(path)
	if err != nil {
		return nil, err
	}
	if err := cat.Validate(players); err != nil {
		return nil, fmt.Errorf("catalog unfit for %d players: %w", players, err)
	}
	return cat, nil
}

type CatalogValidateCmd struct {
	File    string `arg:"" optional:"" help:"Catalog file (HCL); built-in set when empty"`
	Players int    `help:"Check a single table size instead of all of 3-7"`
}

func (c *CatalogValidateCmd) Run() error {
	cat, err := openCatalog(c.File)
	if err != nil {
		return err
	}

	var sizes []int
	if c.Players != 0 {
		sizes = []int{c.Players}
	} else {
		for players := game.MinPlayers; players <= game.MaxPlayers; players++ {
			sizes = append(sizes, players)
		}
	}

	for _, players := range sizes {
		if err := cat.Validate(players); err != nil {
			return fmt.Errorf("%d players: %w", players, err)
		}
		fmt.Printf("%d players: ok\n", players)
	}

	fmt.Printf("%d cards, %d companies\n", cat.CardCount(), len(cat.Companies()))
	return nil
}

type CatalogShowCmd struct {
	File string `arg:"" optional:"" help:"Catalog file (HCL); built-in set when empty"`
}

func (c *CatalogShowCmd) Run() error {
	cat, err := openCatalog(c.File)
	if err != nil {
		return err
	}

	for _, age := range draft.Ages {
		cards := cat.AgeCards(age)
		fmt.Printf("%s\n", headerStyle.Render(fmt.Sprintf("%s (%d cards)", age, len(cards))))
		printCards(cards)
		fmt.Println()
	}

	community := cat.CommunityCards()
	fmt.Printf("%s\n", headerStyle.Render(fmt.Sprintf("Communal pool (%d cards)", len(community))))
	printCards(community)
	fmt.Println()

	companies := cat.Companies()
	fmt.Printf("%s\n", headerStyle.Render(fmt.Sprintf("Companies (%d)", len(companies))))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("company"), headerStyle.Render("side"),
		headerStyle.Render("base"), headerStyle.Render("stages"))
	for _, co := range companies {
		for _, profile := range []draft.CompanyProfile{co.SideA, co.SideB} {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", co.Name, profile.Side, profile.Base.Name, len(profile.Stages))
		}
	}
	w.Flush()

	return nil
}

func printCards(cards []*draft.Card) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("card"), headerStyle.Render("kind"),
		headerStyle.Render("seats"), headerStyle.Render("cost"))
	for _, card := range cards {
		fmt.Fprintf(w, "%s\t%s\t%d+\t%s\n", card.Name, card.Kind, card.MinPlayers, formatCost(card.Cost))
	}
	w.Flush()
}

// formatCost renders a construction cost, eg "2 funding + 1 Steel".
func formatCost(cost draft.Cost) string {
	if cost.Free() {
		return "free"
	}
	var parts []string
	if cost.Funding > 0 {
		parts = append(parts, fmt.Sprintf("%d funding", cost.Funding))
	}
	if !cost.Resources.IsZero() {
		parts = append(parts, formatResources(cost.Resources))
	}
	return strings.Join(parts, " + ")
}
