package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// GeneratorFlags covers what is generated and how: the range, the strategy and
// the output buffer.

func GeneratorFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "preset",
			Usage: "Tuning preset applied before other settings (default|lite|large|baseline)",
		},
		cli.StringFlag{
			Name:  "strategy",
			Usage: "Generation strategy (batched|counter|buffered|naive)",
			Value: "batched",
		},
		cli.IntFlag{
			Name:  "buffer",
			Usage: "Output buffer size in bytes",
			Value: 64 * 1024,
		},
		cli.IntFlag{
			Name:  "digits",
			Usage: "Stop after the last number with this many digits (1-19)",
			Value: 16,
		},
		cli.Uint64Flag{
			Name:  "limit",
			Usage: "Stop after this number (0 = run through --digits)",
		},
		cli.StringFlag{
			Name:  "output, o",
			Usage: "Write to this file instead of stdout (\"-\" = stdout)",
			Value: "-",
		},
	}
}

// VerifyFlags are specific to the verify command.

func VerifyFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "input, i",
			Usage: "Read the stream from this file instead of stdin (\"-\" = stdin)",
			Value: "-",
		},
		cli.Uint64Flag{
			Name:  "first",
			Usage: "Number the stream is expected to start at",
			Value: 1,
		},
	}
}
