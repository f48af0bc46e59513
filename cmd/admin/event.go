package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/ttoweb/techportal/internal/forms"
	"github.com/ttoweb/techportal/pkg/client/listview"
)

func eventCmd() *cli.Command {
	return &cli.Command{
		Name:  "event",
		Usage: "Manage event records",
		Subcommands: []*cli.Command{
			eventListCmd(),
			eventGetCmd(),
			eventAddCmd(),
			eventUpdateCmd(),
			eventDeleteCmd(),
		},
	}
}

func eventIDArg(c *cli.Context) (int64, error) {
	if c.NArg() != 1 {
		return 0, fmt.Errorf("expected exactly one id argument")
	}
	id, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("event id must be numeric: %q", c.Args().First())
	}
	return id, nil
}

func eventListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List events with client-side search, filter and paging",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "Substring match against title or id"},
			&cli.StringFlag{Name: "category", Usage: "Substring filter on month"},
			&cli.IntFlag{Name: "page", Aliases: []string{"p"}, Value: 1, Usage: "Page number (9 per page)"},
			&cli.BoolFlag{Name: "refresh", Usage: "Bypass the local snapshot and refetch"},
		},
		Action: func(c *cli.Context) error {
			cl := newClient(c)

			items, err := cl.ListEvents(c.Context)
			if c.Bool("refresh") {
				items, err = cl.RefreshEvents(c.Context)
			}
			if err != nil {
				return err
			}

			filtered := listview.FilterEvents(items, c.String("search"), c.String("category"))
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

func eventGetCmd() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Fetch an event by numeric id",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			id, err := eventIDArg(c)
			if err != nil {
				return err
			}
			cl := newClient(c)
			event, err := cl.GetEvent(c.Context, id)
			if err != nil {
				return err
			}
			return printJSON(event)
		},
	}
}

func eventFormFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "title"},
		&cli.StringFlag{Name: "month"},
		&cli.StringFlag{Name: "day"},
		&cli.StringFlag{Name: "location"},
		&cli.StringFlag{Name: "time"},
		&cli.StringFlag{Name: "description"},
		&cli.StringFlag{Name: "registration", Usage: "Registration link or instructions"},
	}
}

func eventFormFromFlags(c *cli.Context) *forms.EventForm {
	return &forms.EventForm{
		Title:        c.String("title"),
		Month:        c.String("month"),
		Day:          c.String("day"),
		Location:     c.String("location"),
		Time:         c.String("time"),
		Description:  c.String("description"),
		Registration: c.String("registration"),
	}
}

func eventAddCmd() *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Create an event (the server assigns the id)",
		Flags: eventFormFlags(),
		Action: func(c *cli.Context) error {
			cl := newClient(c)
			event, err := cl.CreateEvent(c.Context, eventFormFromFlags(c).Payload())
			if err != nil {
				return err
			}
			fmt.Println("Event added successfully!")
			return printJSON(event)
		},
	}
}

func eventUpdateCmd() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Update an event (blank fields are left unchanged)",
		ArgsUsage: "<id>",
		Flags:     eventFormFlags(),
		Action: func(c *cli.Context) error {
			id, err := eventIDArg(c)
			if err != nil {
				return err
			}
			cl := newClient(c)
			event, err := cl.UpdateEvent(c.Context, id, eventFormFromFlags(c).Payload())
			if err != nil {
				return err
			}
			fmt.Println("Event updated successfully!")
			return printJSON(event)
		},
	}
}

func eventDeleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete an event",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Skip the confirmation prompt"},
		},
		Action: func(c *cli.Context) error {
			id, err := eventIDArg(c)
			if err != nil {
				return err
			}

			if !confirm(fmt.Sprintf("Delete event %d?", id), c.Bool("yes")) {
				fmt.Println("Aborted")
				return nil
			}

			cl := newClient(c)
			if err := cl.DeleteEvent(c.Context, id); err != nil {
				return err
			}
			fmt.Println("Event deleted successfully")
			return nil
		},
	}
}
