package catalog

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/draftforbots/draft"
)

// fileHCL is the root schema of a catalog file.
type fileHCL struct {
	Cards     []cardHCL    `hcl:"card,block"`
	Companies []companyHCL `hcl:"company,block"`
}

// cardHCL defines one card and the table sizes that add a copy of it.
type cardHCL struct {
	Name       string      `hcl:"name,label"`
	Age        int         `hcl:"age,optional"`
	Kind       string      `hcl:"kind"`
	MinPlayers []int       `hcl:"min_players,optional"`
	CostFunds  int         `hcl:"cost_funds,optional"`
	Cost       []string    `hcl:"cost,optional"`
	Effects    []effectHCL `hcl:"effect,block"`
}

// effectHCL is a tagged union across every effect type. Which fields apply
// depends on the block label.
type effectHCL struct {
	Type       string      `hcl:"type,label"`
	Amount     int         `hcl:"amount,optional"`
	Points     int         `hcl:"points,optional"`
	Category   string      `hcl:"category,optional"`
	Per        string      `hcl:"per,optional"`
	Scope      string      `hcl:"scope,optional"`
	Tag        string      `hcl:"tag,optional"`
	Age        int         `hcl:"age,optional"`
	Strength   int         `hcl:"strength,optional"`
	Options    []optionHCL `hcl:"option,block"`
	Directions []string    `hcl:"directions,optional"`
	Refined    bool        `hcl:"refined,optional"`
	Price      int         `hcl:"price,optional"`
	Names      []string    `hcl:"names,optional"`
}

type optionHCL struct {
	Resources []string `hcl:"resources"`
}

type companyHCL struct {
	Name     string    `hcl:"name,label"`
	Produces string    `hcl:"produces"`
	Sides    []sideHCL `hcl:"side,block"`
}

type sideHCL struct {
	Name   string     `hcl:"name,label"`
	Stages []stageHCL `hcl:"stage,block"`
}

type stageHCL struct {
	CostFunds int         `hcl:"cost_funds,optional"`
	Cost      []string    `hcl:"cost,optional"`
	Effects   []effectHCL `hcl:"effect,block"`
}

// Load reads a catalog from an HCL file.
func Load(filename string) (*Catalog, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var root fileHCL
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	return build(&root)
}

// Parse reads a catalog from HCL source held in memory. The filename only
// labels diagnostics.
func Parse(filename string, src []byte) (*Catalog, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	var root fileHCL
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	return build(&root)
}

func build(root *fileHCL) (*Catalog, error) {
	cat := &Catalog{ages: make(map[draft.Age][]*draft.Card)}

	for _, c := range root.Cards {
		kind, err := parseKind(c.Kind)
		if err != nil {
			return nil, fmt.Errorf("card %s: %w", c.Name, err)
		}
		cost, err := parseCost(c.CostFunds, c.Cost)
		if err != nil {
			return nil, fmt.Errorf("card %s: %w", c.Name, err)
		}
		effects, err := parseEffects(c.Effects)
		if err != nil {
			return nil, fmt.Errorf("card %s: %w", c.Name, err)
		}

		card := draft.Card{Name: c.Name, Kind: kind, Cost: cost, Effects: effects}
		if kind == draft.KindCommunity {
			card.Age = draft.AgeIII
			card.MinPlayers = 3
			cat.community = append(cat.community, &card)
			continue
		}
		if c.Age < 1 || c.Age > len(draft.Ages) {
			return nil, fmt.Errorf("card %s: age must be 1 to %d, got %d", c.Name, len(draft.Ages), c.Age)
		}
		card.Age = draft.Age(c.Age)
		mins := c.MinPlayers
		if len(mins) == 0 {
			mins = []int{3}
		}
		cat.ages[card.Age] = append(cat.ages[card.Age], copies(card, mins...)...)
	}

	for _, co := range root.Companies {
		company, err := buildCompany(co)
		if err != nil {
			return nil, err
		}
		cat.companies = append(cat.companies, company)
	}

	return cat, nil
}

func buildCompany(co companyHCL) (draft.Company, error) {
	resource, err := parseResource(co.Produces)
	if err != nil {
		return draft.Company{}, fmt.Errorf("company %s: %w", co.Name, err)
	}
	hq := &draft.Card{
		Name: co.Name + " HQ", Kind: draft.KindBase,
		Effects: []draft.Effect{draft.Fixed(draft.Of(resource, 1))},
	}

	company := draft.Company{Name: co.Name}
	for _, s := range co.Sides {
		profile := draft.CompanyProfile{Company: co.Name, Side: s.Name, Base: hq}
		for i, st := range s.Stages {
			cost, err := parseCost(st.CostFunds, st.Cost)
			if err != nil {
				return draft.Company{}, fmt.Errorf("company %s side %s stage %d: %w", co.Name, s.Name, i+1, err)
			}
			effects, err := parseEffects(st.Effects)
			if err != nil {
				return draft.Company{}, fmt.Errorf("company %s side %s stage %d: %w", co.Name, s.Name, i+1, err)
			}
			profile.Stages = append(profile.Stages, &draft.Card{
				Name: fmt.Sprintf("%s Stage %d", co.Name, i+1),
				Kind: draft.KindStage, Cost: cost, Effects: effects,
			})
		}
		switch strings.ToUpper(s.Name) {
		case "A":
			company.SideA = profile
		case "B":
			company.SideB = profile
		default:
			return draft.Company{}, fmt.Errorf("company %s: side must be A or B, got %q", co.Name, s.Name)
		}
	}
	if company.SideA.Base == nil || company.SideB.Base == nil {
		return draft.Company{}, fmt.Errorf("company %s: both sides must be defined", co.Name)
	}
	return company, nil
}

func parseEffects(defs []effectHCL) ([]draft.Effect, error) {
	if len(defs) == 0 {
		return nil, nil
	}
	out := make([]draft.Effect, 0, len(defs))
	for _, def := range defs {
		eff, err := parseEffect(def)
		if err != nil {
			return nil, err
		}
		out = append(out, eff)
	}
	return out, nil
}

func parseEffect(def effectHCL) (draft.Effect, error) {
	switch def.Type {
	case "funding":
		per, err := parseTrigger(def.Per, def.Scope)
		if err != nil {
			return nil, err
		}
		return draft.GainFunding{Amount: def.Amount, Per: per}, nil
	case "victory":
		category, err := parseCategory(def.Category)
		if err != nil {
			return nil, err
		}
		per, err := parseTrigger(def.Per, def.Scope)
		if err != nil {
			return nil, err
		}
		return draft.AddVictory{Category: category, Points: def.Points, Per: per}, nil
	case "research":
		tag, err := parseTag(def.Tag)
		if err != nil {
			return nil, err
		}
		return draft.Research{Tag: tag}, nil
	case "wildcard":
		return draft.Wildcard{}, nil
	case "opportunity":
		return draft.Opportunity{Age: draft.Age(def.Age)}, nil
	case "copy_community":
		return draft.CopyCommunity{}, nil
	case "recycling":
		return draft.Recycling{}, nil
	case "poaching":
		return draft.Poaching{Strength: def.Strength}, nil
	case "efficiency":
		return draft.Efficiency{}, nil
	case "produce":
		options := make([]draft.Resources, 0, len(def.Options))
		for _, opt := range def.Options {
			rs, err := parseResources(opt.Resources)
			if err != nil {
				return nil, err
			}
			options = append(options, rs)
		}
		return draft.Produce{Options: options}, nil
	case "discount":
		directions := make([]draft.Direction, 0, len(def.Directions))
		for _, d := range def.Directions {
			dir, err := parseDirection(d)
			if err != nil {
				return nil, err
			}
			directions = append(directions, dir)
		}
		return draft.Discount{Directions: directions, Refined: def.Refined, Price: def.Price}, nil
	case "unlocks":
		return draft.Unlocks{Names: def.Names}, nil
	default:
		return nil, fmt.Errorf("unknown effect type %q", def.Type)
	}
}

func parseTrigger(per, scope string) (draft.Trigger, error) {
	if per == "" {
		return draft.Trigger{}, nil
	}
	s, err := parseScope(scope)
	if err != nil {
		return draft.Trigger{}, err
	}
	switch per {
	case "stages":
		return draft.PerStage(s), nil
	case "defeats":
		return draft.PerDefeat(s), nil
	default:
		kind, err := parseKind(per)
		if err != nil {
			return draft.Trigger{}, fmt.Errorf("per must be stages, defeats, or a card kind: %w", err)
		}
		return draft.PerKind(s, kind), nil
	}
}

func parseScope(s string) (draft.Scope, error) {
	switch strings.ToLower(s) {
	case "", "self":
		return draft.ScopeSelf, nil
	case "neighbors":
		return draft.ScopeNeighbors, nil
	case "all":
		return draft.ScopeSelfAndNeighbors, nil
	default:
		return 0, fmt.Errorf("unknown scope %q", s)
	}
}

func parseDirection(s string) (draft.Direction, error) {
	switch strings.ToLower(s) {
	case "left":
		return draft.Left, nil
	case "right":
		return draft.Right, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

func parseKind(s string) (draft.Kind, error) {
	switch strings.ToLower(s) {
	case "supplier":
		return draft.KindSupplier, nil
	case "workshop":
		return draft.KindWorkshop, nil
	case "prestige":
		return draft.KindPrestige, nil
	case "commerce":
		return draft.KindCommerce, nil
	case "research":
		return draft.KindResearch, nil
	case "poaching":
		return draft.KindPoaching, nil
	case "community":
		return draft.KindCommunity, nil
	default:
		return 0, fmt.Errorf("unknown card kind %q", s)
	}
}

func parseCategory(s string) (draft.Category, error) {
	for _, c := range draft.Categories {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown scoring category %q", s)
}

func parseTag(s string) (draft.ResearchTag, error) {
	for i := range draft.NumResearchTags {
		tag := draft.ResearchTag(i)
		if strings.EqualFold(s, tag.String()) {
			return tag, nil
		}
	}
	return 0, fmt.Errorf("unknown research tag %q", s)
}

func parseResource(s string) (draft.Resource, error) {
	for i := range draft.NumResources {
		r := draft.Resource(i)
		if strings.EqualFold(s, r.String()) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown resource %q", s)
}

func parseResources(names []string) (draft.Resources, error) {
	var out draft.Resources
	for _, name := range names {
		r, err := parseResource(name)
		if err != nil {
			return draft.Resources{}, err
		}
		out = out.Plus(draft.Of(r, 1))
	}
	return out, nil
}

func parseCost(funds int, resources []string) (draft.Cost, error) {
	rs, err := parseResources(resources)
	if err != nil {
		return draft.Cost{}, err
	}
	if funds < 0 {
		return draft.Cost{}, fmt.Errorf("negative funding cost %d", funds)
	}
	return draft.Cost{Funding: funds, Resources: rs}, nil
}
