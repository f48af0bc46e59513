package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ttoweb/techportal/internal/forms"
	"github.com/ttoweb/techportal/pkg/client/listview"
)

func techCmd() *cli.Command {
	return &cli.Command{
		Name:  "tech",
		Usage: "Manage technology records",
		Subcommands: []*cli.Command{
			techListCmd(),
			techGetCmd(),
			techAddCmd(),
			techUpdateCmd(),
			techDeleteCmd(),
		},
	}
}

func techListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List technologies with client-side search, filters and paging",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "Substring match against name or id"},
			&cli.StringFlag{Name: "genre", Usage: "Substring filter on genre"},
			&cli.StringFlag{Name: "innovator", Usage: "Substring filter on innovators"},
			&cli.IntFlag{Name: "page", Aliases: []string{"p"}, Value: 1, Usage: "Page number (9 per page)"},
			&cli.BoolFlag{Name: "refresh", Usage: "Bypass the local snapshot and refetch"},
		},
		Action: func(c *cli.Context) error {
			cl := newClient(c)

			items, err := cl.ListTechnologies(c.Context)
			if c.Bool("refresh") {
				items, err = cl.RefreshTechnologies(c.Context)
			}
			if err != nil {
				return err
			}

			filtered := listview.FilterTechnologies(items, c.String("search"), c.String("genre"), c.String("innovator"))
			pageItems, totalPages := listview.Paginate(filtered, c.Int("page"))

			return printJSON(map[string]any{
				"items":      pageItems,
				"page":       c.Int("page"),
				"totalPages": totalPages,
				"matched":    len(filtered),
			})
		},
	}
}

func techGetCmd() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Fetch a technology by id",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one id argument")
			}
			cl := newClient(c)
			tech, err := cl.GetTechnology(c.Context, c.Args().First())
			if err != nil {
				return err
			}
			return printJSON(tech)
		},
	}
}

func techFormFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "id", Usage: "Logical id (defaults to docket, else a timestamp)"},
		&cli.StringFlag{Name: "docket", Usage: "External reference code"},
		&cli.StringFlag{Name: "name"},
		&cli.StringFlag{Name: "description"},
		&cli.StringFlag{Name: "overview"},
		&cli.StringFlag{Name: "detailed-description"},
		&cli.StringFlag{Name: "genre"},
		&cli.StringFlag{Name: "specs", Usage: "Technical specifications"},
		&cli.StringFlag{Name: "innovators", Usage: "Comma-separated list"},
		&cli.StringFlag{Name: "advantages", Usage: "Comma-separated list"},
		&cli.StringFlag{Name: "applications", Usage: "Comma-separated list"},
		&cli.StringFlag{Name: "use-cases", Usage: "Comma-separated list"},
		&cli.StringFlag{Name: "links", Usage: "Related links as Title|URL, Title|URL"},
		&cli.StringFlag{Name: "trl", Usage: "Technology Readiness Level (1-9)"},
		&cli.BoolFlag{Name: "spotlight"},
	}
}

func techFormFromFlags(c *cli.Context) *forms.TechnologyForm {
	return &forms.TechnologyForm{
		ID:                      c.String("id"),
		Docket:                  c.String("docket"),
		Name:                    c.String("name"),
		Description:             c.String("description"),
		Overview:                c.String("overview"),
		DetailedDescription:     c.String("detailed-description"),
		Genre:                   c.String("genre"),
		TechnicalSpecifications: c.String("specs"),
		Innovators:              c.String("innovators"),
		Advantages:              c.String("advantages"),
		Applications:            c.String("applications"),
		UseCases:                c.String("use-cases"),
		RelatedLinks:            c.String("links"),
		TRL:                     c.String("trl"),
		Spotlight:               c.Bool("spotlight"),
	}
}

func techAddCmd() *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Create a technology record",
		Flags: techFormFlags(),
		Action: func(c *cli.Context) error {
			payload, err := techFormFromFlags(c).Payload()
			if err != nil {
				return err
			}
			cl := newClient(c)
			tech, err := cl.CreateTechnology(c.Context, payload)
			if err != nil {
				return err
			}
			fmt.Println("Technology added successfully!")
			return printJSON(tech)
		},
	}
}

func techUpdateCmd() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Update a technology record (blank fields are left unchanged)",
		ArgsUsage: "<id>",
		Flags:     techFormFlags(),
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one id argument")
			}
			id := c.Args().First()

			form := techFormFromFlags(c)
			// Payload derives an id when none is set; updates address the
			// record via the path, so keep the body id out entirely.
			form.ID = ""
			payload, err := form.Payload()
			if err != nil {
				return err
			}
			delete(payload, "id")

			cl := newClient(c)
			tech, err := cl.UpdateTechnology(c.Context, id, payload)
			if err != nil {
				return err
			}
			fmt.Println("Technology updated successfully!")
			return printJSON(tech)
		},
	}
}

func techDeleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a technology record",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Skip the confirmation prompt"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one id argument")
			}
			id := c.Args().First()

			if !confirm(fmt.Sprintf("Delete technology %q?", id), c.Bool("yes")) {
				fmt.Println("Aborted")
				return nil
			}

			cl := newClient(c)
			if err := cl.DeleteTechnology(c.Context, id); err != nil {
				return err
			}
			fmt.Println("Technology deleted successfully")
			return nil
		},
	}
}
