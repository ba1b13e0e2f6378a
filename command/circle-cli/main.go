// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect  string
	insecure bool
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "circle-cli"
	app.Usage = "client for the circled savings circle node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " circled host/IP and port `HOST:PORT`",
			EnvVar: "CIRCLE_CONNECT",
		},
		cli.BoolFlag{
			Name:  "insecure, k",
			Usage: " plain TCP connection without TLS",
		},
		cli.StringFlag{
			Name:   "caller, a",
			Value:  "",
			Usage:  " address performing the operation `ADDRESS`",
			EnvVar: "CIRCLE_CALLER",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "create",
			Usage:     "create a savings circle",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*circle name `STRING`",
				},
				cli.StringFlag{
					Name:  "goal, g",
					Value: "",
					Usage: "*savings goal `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "amount, m",
					Value: "",
					Usage: "*contribution per period `AMOUNT`",
				},
				cli.Uint64Flag{
					Name:  "period, p",
					Value: 0,
					Usage: "*contribution period `SECONDS`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " circle owner `ADDRESS` [default caller]",
				},
				cli.BoolFlag{
					Name:  "premium",
					Usage: " create a premium circle",
				},
				cli.StringFlag{
					Name:  "fee, f",
					Value: "",
					Usage: " fee paid to the treasury `AMOUNT`",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "circle",
			Usage:     "display a circle",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				circleFlag,
			},
			Action: runCircle,
		},
		{
			Name:      "members",
			Usage:     "list the members of a circle",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				circleFlag,
			},
			Action: runMembers,
		},
		{
			Name:      "circles",
			Usage:     "list the circles that an address belongs to",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				memberFlag,
			},
			Action: runCircles,
		},
		{
			Name:      "add-member",
			Usage:     "add a member to a circle (owner only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				circleFlag,
				memberFlag,
			},
			Action: runAddMember,
		},
		{
			Name:      "contribute",
			Usage:     "pay one contribution to a circle",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				circleFlag,
				cli.StringFlag{
					Name:  "amount, m",
					Value: "",
					Usage: "*exact contribution `AMOUNT`",
				},
			},
			Action: runContribute,
		},
		{
			Name:      "member",
			Usage:     "display a member's ledger record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				circleFlag,
				memberFlag,
			},
			Action: runMember,
		},
		{
			Name:      "streak",
			Usage:     "display a member's contribution streak",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				circleFlag,
				memberFlag,
			},
			Action: runStreak,
		},
		{
			Name:      "disbursements",
			Usage:     "list payouts received by an address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				memberFlag,
			},
			Action: runDisbursements,
		},
		{
			Name:      "propose",
			Usage:     "open a governance proposal",
			ArgsUsage: "\n   (* = required, + = kind dependent)",
			Flags: []cli.Flag{
				circleFlag,
				cli.StringFlag{
					Name:  "kind",
					Value: "",
					Usage: "*proposal kind `KIND` [WITHDRAWAL|DONATION|PARAM_CHANGE]",
				},
				cli.StringFlag{
					Name:  "title, t",
					Value: "",
					Usage: "*title `STRING`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " description `STRING`",
				},
				cli.StringFlag{
					Name:  "amount, m",
					Value: "",
					Usage: "*amount to pay out or new parameter value `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "+payout recipient `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "parameter",
					Value: "",
					Usage: "+parameter to change `NAME` [contributionAmount|contributionPeriod|goal]",
				},
			},
			Action: runPropose,
		},
		{
			Name:      "vote",
			Usage:     "vote on an open proposal",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				circleFlag,
				proposalFlag,
				cli.BoolFlag{
					Name:  "against",
					Usage: " vote against the proposal",
				},
			},
			Action: runVote,
		},
		{
			Name:      "execute",
			Usage:     "execute a passed proposal",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				circleFlag,
				proposalFlag,
			},
			Action: runExecute,
		},
		{
			Name:      "proposal",
			Usage:     "display a proposal and its state",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				circleFlag,
				proposalFlag,
			},
			Action: runProposal,
		},
		{
			Name:      "proposals",
			Usage:     "list the proposals of a circle",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				circleFlag,
			},
			Action: runProposals,
		},
		{
			Name:      "has-badge",
			Usage:     "check whether a member holds a badge",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				circleFlag,
				memberFlag,
				cli.StringFlag{
					Name:  "kind",
					Value: "",
					Usage: "*badge kind `KIND` [streak|top-contributor|governor]",
				},
			},
			Action: runHasBadge,
		},
		{
			Name:      "badges",
			Usage:     "list the badges of a member in a circle",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				circleFlag,
				memberFlag,
			},
			Action: runBadges,
		},
		{
			Name:      "events",
			Usage:     "read the event log",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 1,
					Usage: " first sequence number `NUMBER`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum events to return `COUNT`",
				},
			},
			Action: runEvents,
		},
		{
			Name:      "info",
			Usage:     "display circled status",
			ArgsUsage: " ",
			Action:    runInfo,
		},
		{
			Name:      "version",
			Usage:     "display circle-cli version",
			ArgsUsage: " ",
			Action:    runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect:  c.GlobalString("connect"),
			insecure: c.GlobalBool("insecure"),
			verbose:  c.GlobalBool("verbose"),
			e:        c.App.ErrWriter,
			w:        c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

var (
	circleFlag = cli.Uint64Flag{
		Name:  "circle, i",
		Value: 0,
		Usage: "*circle `ID`",
	}
	memberFlag = cli.StringFlag{
		Name:  "member, r",
		Value: "",
		Usage: "*member `ADDRESS`",
	}
	proposalFlag = cli.Uint64Flag{
		Name:  "proposal, p",
		Value: 0,
		Usage: "*proposal `ID`",
	}
)

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
