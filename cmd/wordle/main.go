// Command wordle is the CLI surface specified as an external collaborator
// to the decision engine (spec §6): it builds an Outcome Matrix, plays one
// game in which the Two-Step player guesses a target word and the feedback
// of every turn is printed (play reads no guesses from the user),
// batch-evaluates a player over held-out targets, and can serve the
// suggestion HTTP/SSE API.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"

	"github.com/ashgrove-labs/wordle-solver/internal/httpapi"
	"github.com/ashgrove-labs/wordle-solver/internal/wordleerr"
	"github.com/ashgrove-labs/wordle-solver/judge"
	"github.com/ashgrove-labs/wordle-solver/logger"
	"github.com/ashgrove-labs/wordle-solver/matrix"
	"github.com/ashgrove-labs/wordle-solver/players"
	"github.com/ashgrove-labs/wordle-solver/posterior"
	"github.com/ashgrove-labs/wordle-solver/word"
	"github.com/ashgrove-labs/wordle-solver/wordlist"
)

const (
	exitOK            = 0
	exitInputError    = 1
	exitInconsistency = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := logger.New()

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: wordle <build-matrix|play|eval|serve> [flags]")
		return exitInputError
	}

	switch args[0] {
	case "build-matrix":
		return runBuildMatrix(args[1:], log)
	case "play":
		return runPlay(args[1:], log)
	case "eval":
		return runEval(args[1:], log)
	case "serve":
		return runServe(args[1:], log)
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", args[0])
		return exitInputError
	}
}

func runBuildMatrix(args []string, log *logger.Logger) int {
	fs := flag.NewFlagSet("build-matrix", flag.ContinueOnError)
	solutionsPath := fs.String("solutions", "", "path to the solutions word list")
	guessesPath := fs.String("guesses", "", "path to the guesses word list")
	outPath := fs.String("out", "", "path to write the matrix blob")
	workers := fs.Int("workers", 0, "worker goroutines for the matrix build (0 = number of CPUs)")
	if err := fs.Parse(args); err != nil {
		return exitInputError
	}
	if *solutionsPath == "" || *guessesPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "build-matrix requires --solutions, --guesses, and --out")
		return exitInputError
	}

	solutions, err := wordlist.LoadFile(*solutionsPath)
	if err != nil {
		log.Error("loading solutions", "error", err)
		return exitInputError
	}
	guesses, err := wordlist.LoadFile(*guessesPath)
	if err != nil {
		log.Error("loading guesses", "error", err)
		return exitInputError
	}

	m, err := matrix.Build(solutions.Words(), guesses.Words(), *workers)
	if err != nil {
		log.Error("building matrix", "error", err)
		return exitInconsistency
	}

	if err := saveMatrix(m, *outPath); err != nil {
		log.Error("saving matrix", "error", err)
		return exitInconsistency
	}

	log.Info("matrix built", "solutions", m.S(), "guesses", m.A(), "out", *outPath)
	return exitOK
}

func saveMatrix(m *matrix.Matrix, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return m.Save(f)
}

func loadMatrix(path string) (*matrix.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return matrix.Load(f)
}

func runPlay(args []string, log *logger.Logger) int {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	matrixPath := fs.String("matrix", "", "path to a built matrix blob")
	opening := fs.String("opening", "", "fixed opening guess")
	target := fs.String("target", "", "target word (random survivor chosen if omitted)")
	if err := fs.Parse(args); err != nil {
		return exitInputError
	}
	if *matrixPath == "" {
		fmt.Fprintln(os.Stderr, "play requires --matrix")
		return exitInputError
	}

	m, err := loadMatrix(*matrixPath)
	if err != nil {
		log.Error("loading matrix", "error", err)
		return exitInputErrorOrInconsistency(err)
	}

	start, err := posterior.NewInitial(m, nil)
	if err != nil {
		log.Error("building initial posterior", "error", err)
		return exitInconsistency
	}

	var opts []players.TwoStepOption
	if *opening != "" {
		w, err := word.New(*opening)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --opening: %v\n", err)
			return exitInputError
		}
		opts = append(opts, players.WithOpening(w))
	}
	player, err := players.NewTwoStep(start, opts...)
	if err != nil {
		log.Error("creating player", "error", err)
		return exitInconsistency
	}

	var targetWord word.Word
	if *target != "" {
		targetWord, err = word.New(*target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --target: %v\n", err)
			return exitInputError
		}
	} else {
		survivors := start.Words()
		targetWord = survivors[rand.Intn(len(survivors))]
	}

	g := judge.New(targetWord)
	for !g.IsOver() {
		guess := player.NextGuess()
		outcome, err := g.RecordGuess(guess)
		if err != nil {
			fmt.Fprintf(os.Stderr, "record guess: %v\n", err)
			return exitInconsistency
		}
		fmt.Printf("%s -> %s\n", outcome.Guess, outcome.Pattern)
		if err := player.Update(outcome.Code, outcome.Guess); err != nil {
			fmt.Fprintf(os.Stderr, "update: %v\n", err)
			return exitInconsistency
		}
	}

	if g.Solved() {
		fmt.Printf("solved in %d guesses\n", g.GuessesMade())
	} else {
		fmt.Printf("failed: target was %s\n", g.Target())
	}
	return exitOK
}

func runEval(args []string, log *logger.Logger) int {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	matrixPath := fs.String("matrix", "", "path to a built matrix blob")
	targetsPath := fs.String("targets", "", "path to a word list of evaluation targets")
	opening := fs.String("opening", "", "fixed opening guess")
	workers := fs.Int("workers", 4, "number of concurrent evaluation workers")
	if err := fs.Parse(args); err != nil {
		return exitInputError
	}
	if *matrixPath == "" || *targetsPath == "" {
		fmt.Fprintln(os.Stderr, "eval requires --matrix and --targets")
		return exitInputError
	}

	m, err := loadMatrix(*matrixPath)
	if err != nil {
		log.Error("loading matrix", "error", err)
		return exitInputErrorOrInconsistency(err)
	}

	targets, err := wordlist.LoadFile(*targetsPath)
	if err != nil {
		log.Error("loading targets", "error", err)
		return exitInputError
	}

	var opts []players.TwoStepOption
	if *opening != "" {
		w, err := word.New(*opening)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --opening: %v\n", err)
			return exitInputError
		}
		opts = append(opts, players.WithOpening(w))
	}

	scores, err := evaluate(m, targets.Words(), *workers, opts)
	if err != nil {
		log.Error("evaluating", "error", err)
		return exitInconsistency
	}

	enc := json.NewEncoder(os.Stdout)
	return encodeOrFail(enc, scores)
}

func encodeOrFail(enc *json.Encoder, v any) int {
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "encoding results: %v\n", err)
		return exitInconsistency
	}
	return exitOK
}

// evaluate replays the Two-Step player against each target word, one
// player instance per worker goroutine, reset with StartNewGame before each
// target it takes, grounded on original_source's
// eval_player worker-pool pattern (ThreadPool.imap_unordered over targets,
// spec §5 "Batch evaluation across many target words").
func evaluate(m *matrix.Matrix, targets []word.Word, workers int, opts []players.TwoStepOption) (map[string]int, error) {
	if workers <= 0 {
		workers = 1
	}

	start, err := posterior.NewInitial(m, nil)
	if err != nil {
		return nil, err
	}

	jobs := make(chan word.Word)
	results := make(map[string]int, len(targets))
	var mu sync.Mutex
	var wg sync.WaitGroup
	var workerErr error
	var errOnce sync.Once

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			player, err := players.NewTwoStep(start, opts...)
			if err != nil {
				errOnce.Do(func() { workerErr = err })
				return
			}
			for target := range jobs {
				score, err := playOneGame(player, target)
				if err != nil {
					errOnce.Do(func() { workerErr = err })
					continue
				}
				mu.Lock()
				results[target.String()] = score
				mu.Unlock()
			}
		}()
	}

	for _, target := range targets {
		jobs <- target
	}
	close(jobs)
	wg.Wait()

	if workerErr != nil {
		return nil, workerErr
	}
	return results, nil
}

func playOneGame(player *players.TwoStep, target word.Word) (int, error) {
	player.StartNewGame()
	g := judge.New(target)
	for !g.IsOver() {
		guess := player.NextGuess()
		outcome, err := g.RecordGuess(guess)
		if err != nil {
			return 0, err
		}
		if err := player.Update(outcome.Code, outcome.Guess); err != nil {
			return 0, err
		}
	}
	return g.Score(), nil
}

func runServe(args []string, log *logger.Logger) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	matrixPath := fs.String("matrix", "", "path to a built matrix blob")
	addr := fs.String("addr", ":8080", "listen address")
	if err := fs.Parse(args); err != nil {
		return exitInputError
	}
	if *matrixPath == "" {
		fmt.Fprintln(os.Stderr, "serve requires --matrix")
		return exitInputError
	}

	m, err := loadMatrix(*matrixPath)
	if err != nil {
		log.Error("loading matrix", "error", err)
		return exitInputErrorOrInconsistency(err)
	}

	svc := httpapi.NewService(m, log)
	http.HandleFunc("/api/v1/suggest/stream", svc.SuggestStream)
	http.HandleFunc("/api/v1/suggest/close", svc.CloseStream)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	log.Info("starting server", "addr", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Error("server error", "error", err)
		return exitInconsistency
	}
	return exitOK
}

func exitInputErrorOrInconsistency(err error) int {
	if errors.Is(err, wordleerr.ErrCorruptMatrix) {
		return exitInconsistency
	}
	return exitInputError
}
