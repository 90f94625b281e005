// Command tictactoe-cli plays a local game against the bot in the
// terminal. It drives the same session service as the server, with a
// termenv presenter instead of the browser.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/oarisur/TicTacToe-PerfectPlay/internal/entity"
	"github.com/oarisur/TicTacToe-PerfectPlay/internal/service"
)

func main() {
	difficulty := flag.String("difficulty", entity.HardDifficulty, "bot difficulty: easy, medium or hard")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	statsRepo := newMemoryStatsRepo()
	presenter := newTermPresenter(os.Stdout)

	// the CLI plays synchronously, so no pacing delay
	session := service.NewGameSession(
		logger,
		service.NewBotService(),
		service.NewStatsService(statsRepo),
		newMemorySavedSlot(),
		presenter,
		0,
	)
	defer session.Stop()

	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	for {
		if _, err := session.StartNewGame(ctx, entity.ModeWithBot, *difficulty); err != nil {
			fmt.Fprintf(os.Stderr, "failed to start game: %v\n", err)
			os.Exit(1)
		}

		playGame(ctx, session, reader)
		printStats(ctx, statsRepo)

		if !askYesNo(reader, "play again? [y/n] ") {
			return
		}
	}
}

func playGame(ctx context.Context, session *service.GameSession, reader *bufio.Reader) {
	for {
		game := session.CurrentGame()
		if game == nil || game.IsFinished() {
			return
		}

		fmt.Printf("your move (%s), cell 0-8: ", game.HumanMark)

		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}

		cell, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Println("enter a number between 0 and 8")
			continue
		}

		if !session.ApplyMove(ctx, cell) {
			fmt.Println("that cell is taken or out of range")
		}
	}
}

func printStats(ctx context.Context, statsRepo *memoryStatsRepo) {
	stats, err := statsRepo.Aggregate(ctx)
	if err != nil {
		return
	}

	fmt.Printf("score so far: %d won, %d lost, %d drawn\n",
		stats.BotTotal.Wins, stats.BotTotal.Losses, stats.BotTotal.Draws)
}

func askYesNo(reader *bufio.Reader, prompt string) bool {
	fmt.Print(prompt)

	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y")
}
