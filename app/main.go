package main

import (
	"flag"
	"log"
	"os"
	"os/exec"

	"github.com/daulet/tasklog"
	"github.com/daulet/tasklog/ui"

	"go.uber.org/zap"
)

// $ go run app/main.go --log-file testdata/build.log --prefix "web:" -- make build
// $ go run app/main.go --replay --log-file testdata/build.log --prefix "web:"

func main() {
	var (
		logFile = flag.String("log-file", "", "path to persist captured output")
		prefix  = flag.String("prefix", ">", "prefix glyph for terminal output")
		replay  = flag.Bool("replay", false, "replay a captured log instead of running a command")
		verbose = flag.Bool("v", false, "enable diagnostic logging")
	)
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
		logger = l
	}
	defer logger.Sync()

	u := ui.Infer(os.Stdout)
	outPrefix := u.Apply(ui.Cyan, *prefix)

	if *replay {
		prefixed := ui.NewPrefixedUI(outPrefix, u.Apply(ui.Bold, *prefix+"!"), os.Stdout,
			ui.WithLogger(logger))
		if err := tasklog.ReplayLogs(prefixed, *logFile, tasklog.WithLogger(logger)); err != nil {
			log.Fatal(err)
		}
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		log.Fatal("no command to run")
	}

	writer := tasklog.NewLogWriter(tasklog.WithLogger(logger))
	if *logFile != "" {
		if err := writer.WithLogFile(*logFile); err != nil {
			log.Fatal(err)
		}
	}
	writer.WithPrefixedWriter(ui.NewPrefixedWriter(outPrefix, os.Stdout))

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = writer
	cmd.Stderr = writer
	runErr := cmd.Run()
	if err := writer.Close(); err != nil {
		log.Fatal(err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
