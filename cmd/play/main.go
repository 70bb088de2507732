// Command play is the terminal client: it signs in against the trivia
// server, authors games through the wizard, and plays them with locally
// persisted visited-question progress.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"jpereira7/Trivia-Night/internal/client"
	"jpereira7/Trivia-Night/internal/db"
	"jpereira7/Trivia-Night/internal/game"
	"jpereira7/Trivia-Night/internal/play"
	"jpereira7/Trivia-Night/internal/repository"
	"jpereira7/Trivia-Night/internal/wizard"
)

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "trivia server base URL")
	cachePath := flag.String("cache", "./playstate.db", "path of the local play-state database")
	redisAddr := flag.String("redis", "", "use a redis play-state cache at this address instead of the local file")
	timeout := flag.Duration("timeout", 10*time.Second, "per-request timeout")
	flag.Parse()

	ctx := context.Background()

	cache, err := openCache(ctx, *cachePath, *redisAddr)
	if err != nil {
		log.Fatalf("failed to open play-state cache: %v", err)
	}

	api := client.New(*serverURL, *timeout)
	app := &app{
		api:   api,
		cache: cache,
		in:    bufio.NewScanner(os.Stdin),
	}
	app.run(ctx)
}

func openCache(ctx context.Context, cachePath, redisAddr string) (play.Cache, error) {
	if redisAddr != "" {
		rdb, err := db.NewRedisClient(ctx, redisAddr)
		if err != nil {
			return nil, err
		}
		return repository.NewPlayStateRepository(rdb), nil
	}

	pool, err := db.Connect(cachePath)
	if err != nil {
		return nil, err
	}
	if err := db.InitializePlayStateSchema(pool); err != nil {
		return nil, err
	}
	return repository.NewLocalPlayStateRepository(pool), nil
}

type app struct {
	api   *client.Client
	cache play.Cache
	in    *bufio.Scanner
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	if !a.in.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *app) run(ctx context.Context) {
	fmt.Println("Trivia Night. Commands: register, login, list, create, play, delete, quit")
	for {
		switch cmd := a.prompt("> "); cmd {
		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "list":
			a.list(ctx)
		case "create":
			a.create(ctx)
		case "play":
			a.play(ctx)
		case "delete":
			a.delete(ctx)
		case "quit", "exit":
			return
		case "":
		default:
			fmt.Printf("unknown command %q\n", cmd)
		}
	}
}

func (a *app) register(ctx context.Context) {
	username := a.prompt("username: ")
	password := a.prompt("password: ")
	if err := a.api.Register(ctx, username, password); err != nil {
		fmt.Printf("registration failed: %v\n", err)
		return
	}
	fmt.Println("registered, now log in")
}

func (a *app) login(ctx context.Context) {
	username := a.prompt("username: ")
	password := a.prompt("password: ")
	res, err := a.api.Login(ctx, username, password)
	if err != nil {
		fmt.Printf("login failed: %v\n", err)
		return
	}
	fmt.Printf("welcome, %s\n", res.User.Username)
}

func (a *app) list(ctx context.Context) []game.Game {
	games, err := a.api.ListGames(ctx)
	if err != nil {
		fmt.Printf("could not list games: %v\n", err)
		return nil
	}
	if len(games) == 0 {
		fmt.Println("no games yet")
		return nil
	}
	for i, g := range games {
		fmt.Printf("%d. %s (%d categories, created %s)\n",
			i+1, g.Name, len(g.Categories), g.CreatedAt.Format("2006-01-02"))
	}
	return games
}

// create walks the authoring wizard for one or more categories and saves
// the assembled game in a single submit.
func (a *app) create(ctx context.Context) {
	gameName := a.prompt("game name: ")

	var categories []game.Category
	for {
		c, ok := a.runWizard()
		if !ok {
			return
		}
		categories = append(categories, *c)
		if a.prompt("add another category? (y/N) ") != "y" {
			break
		}
	}

	g, err := a.api.CreateGame(ctx, gameName, categories)
	if err != nil {
		fmt.Printf("failed to save game: %v\n", err)
		return
	}
	fmt.Printf("saved %q with %d categories\n", g.Name, len(g.Categories))
}

func (a *app) runWizard() (*game.Category, bool) {
	w := wizard.New()

	for {
		if err := w.SetName(a.prompt("category name: ")); err != nil {
			fmt.Println(err)
			continue
		}
		break
	}

	for {
		n, err := strconv.Atoi(a.prompt("questions per difficulty (1-10): "))
		if err != nil {
			fmt.Println("enter a number")
			continue
		}
		if err := w.SetCount(n); err != nil {
			fmt.Println(err)
			continue
		}
		break
	}

	for {
		d, i := w.Cursor()
		text := a.prompt(fmt.Sprintf("[%s %d] question text (or !prev): ", d, i+1))
		if text == "!prev" {
			w.Prev()
			continue
		}
		if err := w.SetText(text); err != nil {
			fmt.Println(err)
			continue
		}
		if !w.Next() {
			continue
		}
		c, err := w.Category()
		if err != nil {
			// Blank slot somewhere; the wizard stays on the question
			// step so the author can walk back and fill it.
			fmt.Println(err)
			continue
		}
		return c, true
	}
}

func (a *app) pickGame(ctx context.Context) *game.Game {
	games := a.list(ctx)
	if games == nil {
		return nil
	}
	n, err := strconv.Atoi(a.prompt("which game? "))
	if err != nil || n < 1 || n > len(games) {
		fmt.Println("no such game")
		return nil
	}
	return &games[n-1]
}

func (a *app) delete(ctx context.Context) {
	g := a.pickGame(ctx)
	if g == nil {
		return
	}
	engine := play.NewEngine(a.cache, a.api)
	if _, err := engine.Load(ctx, g); err != nil {
		fmt.Printf("could not load game: %v\n", err)
		return
	}
	if err := engine.DeleteGame(ctx); err != nil {
		fmt.Printf("delete failed: %v\n", err)
		return
	}
	fmt.Println("game deleted")
}

func (a *app) play(ctx context.Context) {
	server := a.pickGame(ctx)
	if server == nil {
		return
	}

	engine := play.NewEngine(a.cache, a.api)
	g, err := engine.Load(ctx, server)
	if err != nil {
		fmt.Printf("could not load game: %v\n", err)
		return
	}
	fmt.Printf("playing %q. Commands: board, open, tracker, restart, delete, back\n", g.Name)

	for {
		switch cmd := a.prompt(g.Name + "> "); cmd {
		case "board":
			a.printBoard(engine)
		case "open":
			a.openQuestion(ctx, engine)
		case "tracker":
			a.printTracker(engine)
		case "restart":
			if err := engine.Restart(ctx); err != nil {
				fmt.Printf("restart failed: %v\n", err)
				continue
			}
			fmt.Println("all questions reset")
		case "delete":
			if err := engine.DeleteGame(ctx); err != nil {
				fmt.Printf("delete failed: %v\n", err)
				continue
			}
			fmt.Println("game deleted")
			return
		case "back":
			return
		case "":
		default:
			fmt.Printf("unknown command %q\n", cmd)
		}
	}
}

func (a *app) printBoard(engine *play.Engine) {
	g := engine.Game()
	for i, c := range g.Categories {
		fmt.Printf("%d. %s\n", i+1, c.Name)
	}
}

func (a *app) openQuestion(ctx context.Context, engine *play.Engine) {
	g := engine.Game()

	n, err := strconv.Atoi(a.prompt("category number: "))
	if err != nil || n < 1 || n > len(g.Categories) {
		fmt.Println("no such category")
		return
	}
	c := &g.Categories[n-1]

	d := game.Difficulty(a.prompt("difficulty (easy/medium/hard): "))
	questions := engine.Questions(c.ID, d)
	if questions == nil {
		fmt.Println("no questions there")
		return
	}
	for i, q := range questions {
		marker := " "
		if q.Visited {
			marker = "x"
		}
		fmt.Printf("[%s] %d\n", marker, i+1)
	}

	i, err := strconv.Atoi(a.prompt("question number: "))
	if err != nil || i < 1 || i > len(questions) {
		fmt.Println("no such question")
		return
	}

	q, err := engine.SelectQuestion(ctx, questions[i-1].ID)
	if err != nil {
		fmt.Printf("could not open question: %v\n", err)
		return
	}
	if q == nil {
		fmt.Println("already visited")
		return
	}
	fmt.Printf("\n  %s\n\n", q.Text)
}

func (a *app) printTracker(engine *play.Engine) {
	fmt.Printf("%-20s %-7s %-7s %-7s\n", "Category", "Easy", "Medium", "Hard")
	for _, row := range engine.Game().Tracker() {
		fmt.Printf("%-20s %d/%-5d %d/%-5d %d/%-5d\n", row.CategoryName,
			row.Visited[game.Easy], row.Total[game.Easy],
			row.Visited[game.Medium], row.Total[game.Medium],
			row.Visited[game.Hard], row.Total[game.Hard])
	}
}
