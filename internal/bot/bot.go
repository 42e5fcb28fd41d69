// Package bot is the Telegram front-end. Each chat owns one practice
// session at a time; the bot presents prompts and reveals example
// solutions on demand. It never grades an answer.
package bot

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/verbdrill/backend/internal/domain/exercise"
	"github.com/verbdrill/backend/internal/session"
	"github.com/verbdrill/backend/internal/store"
)

const (
	cmdStart    = "start"
	cmdPractice = "practice"
	cmdNext     = "next"
	cmdPrev     = "prev"
	cmdSolution = "solution"
	cmdVerbs    = "verbs"
	cmdFav      = "fav"
	cmdHelp     = "help"
)

// Bot serves drills over Telegram.
type Bot struct {
	api        *tgbotapi.BotAPI
	store      *store.Store
	favourites *store.FavouriteStore
	logger     *slog.Logger
	sessions   map[int64]*session.Session // chat id → active session
}

// New creates a bot over an already validated exercise store.
func New(token string, s *store.Store, favourites *store.FavouriteStore, logger *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	return &Bot{
		api:        api,
		store:      s,
		favourites: favourites,
		logger:     logger,
		sessions:   make(map[int64]*session.Session),
	}, nil
}

// Start polls for updates until the process is stopped.
func (b *Bot) Start() {
	b.logger.Info("starting bot polling")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	for update := range b.api.GetUpdatesChan(u) {
		if update.Message == nil {
			continue
		}
		b.handleMessage(update.Message)
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	b.logger.Info("message", "user", message.From.UserName, "text", message.Text)

	switch message.Command() {
	case cmdStart, cmdHelp:
		b.sendHelp(message.Chat.ID)
	case cmdPractice:
		b.startPractice(message)
	case cmdNext:
		b.advance(message.Chat.ID)
	case cmdPrev:
		b.retreat(message.Chat.ID)
	case cmdSolution:
		b.showSolution(message.Chat.ID)
	case cmdVerbs:
		b.showVerbs(message.Chat.ID)
	case cmdFav:
		b.handleFav(message)
	default:
		b.send(message.Chat.ID, "Unknown command. Use /help for the command list.")
	}
}

func (b *Bot) sendHelp(chatID int64) {
	b.send(chatID, `Willkommen! This bot presents German grammar drills.

/practice [level] [topic] — start a session, e.g. /practice B1.1 kasus
/next — next exercise
/prev — previous exercise
/solution — reveal example solutions
/verbs — verbs in the current session
/fav add|remove|list [verb] — manage favourite verbs

Favourite verbs show up more often in your sessions. Nothing is graded;
compare your answer with the examples yourself.`)
}

func (b *Bot) startPractice(message *tgbotapi.Message) {
	var q store.Query
	for _, arg := range strings.Fields(message.CommandArguments()) {
		if level, err := exercise.ParseLevel(arg); err == nil {
			q.Level = &level
			q.IncludePreviousLevels = true
			continue
		}
		if topic, err := exercise.ParseTopic(arg); err == nil {
			q.Topic = &topic
			continue
		}
		b.send(message.Chat.ID, fmt.Sprintf("I don't know %q. Levels: A2.1 A2.2 B1.1 B1.2. Topics: kasus trennbar praeposition reflexiv partizip_ii.", arg))
		return
	}

	filtered := b.store.Filter(q)
	if len(filtered) == 0 {
		b.send(message.Chat.ID, "No exercises match those filters.")
		return
	}

	favouriteSet, err := b.favourites.VerbSet(fmt.Sprintf("tg:%d", message.From.ID))
	if err != nil {
		b.logger.Error("failed to load favourites", "error", err)
		favouriteSet = nil
	}

	sess := session.New(filtered, session.Options{
		Shuffle:        true,
		UseMix:         true,
		FavouriteVerbs: favouriteSet,
	})
	b.sessions[message.Chat.ID] = sess

	b.send(message.Chat.ID, fmt.Sprintf("Session started: %d exercises, verbs: %s", sess.Len(), strings.Join(sess.Verbs(), ", ")))
	b.sendCurrent(message.Chat.ID)
}

func (b *Bot) activeSession(chatID int64) *session.Session {
	sess, ok := b.sessions[chatID]
	if !ok {
		b.send(chatID, "No active session. Start one with /practice.")
		return nil
	}
	return sess
}

func (b *Bot) sendCurrent(chatID int64) {
	sess := b.sessions[chatID]
	ex, ok := sess.Current()
	if !ok {
		b.send(chatID, "Session complete. Gut gemacht! Start another with /practice.")
		delete(b.sessions, chatID)
		return
	}

	position, total := sess.Progress()
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%d/%d] %s · %s · %s\n\n%s\n", position, total, ex.Level, ex.Topic, ex.Verb, ex.Prompt)
	if len(ex.Choices) > 0 {
		sb.WriteString("\n")
		for i, choice := range ex.Choices {
			fmt.Fprintf(&sb, "%c) %s\n", 'a'+i, choice)
		}
	}
	if ex.Hint != "" {
		fmt.Fprintf(&sb, "\nHint: %s", ex.Hint)
	}
	if ex.English != "" {
		fmt.Fprintf(&sb, "\nEnglish: %s", ex.English)
	}
	sb.WriteString("\n\n/solution to see examples, /next to continue")
	b.send(chatID, sb.String())
}

func (b *Bot) advance(chatID int64) {
	sess := b.activeSession(chatID)
	if sess == nil {
		return
	}
	sess.Advance()
	b.sendCurrent(chatID)
}

func (b *Bot) retreat(chatID int64) {
	sess := b.activeSession(chatID)
	if sess == nil {
		return
	}
	if !sess.Retreat() {
		b.send(chatID, "Already at the first exercise.")
		return
	}
	b.sendCurrent(chatID)
}

func (b *Bot) showSolution(chatID int64) {
	sess := b.activeSession(chatID)
	if sess == nil {
		return
	}
	ex, ok := sess.Current()
	if !ok {
		b.send(chatID, "The session is already complete.")
		return
	}
	b.send(chatID, "Example solutions:\n• "+strings.Join(ex.ExampleSolutions, "\n• "))
}

func (b *Bot) showVerbs(chatID int64) {
	sess := b.activeSession(chatID)
	if sess == nil {
		return
	}
	b.send(chatID, "Verbs in this session: "+strings.Join(sess.Verbs(), ", "))
}

func (b *Bot) handleFav(message *tgbotapi.Message) {
	userKey := fmt.Sprintf("tg:%d", message.From.ID)
	args := strings.Fields(message.CommandArguments())

	if len(args) == 0 || args[0] == "list" {
		verbs, err := b.favourites.List(userKey)
		if err != nil {
			b.logger.Error("failed to list favourites", "error", err)
			b.send(message.Chat.ID, "Sorry, I couldn't load your favourites.")
			return
		}
		if len(verbs) == 0 {
			b.send(message.Chat.ID, "No favourite verbs yet. Add one with /fav add <verb>.")
			return
		}
		b.send(message.Chat.ID, "Your favourite verbs: "+strings.Join(verbs, ", "))
		return
	}

	if len(args) < 2 {
		b.send(message.Chat.ID, "Usage: /fav add|remove|list [verb]")
		return
	}

	switch args[0] {
	case "add":
		for _, verb := range args[1:] {
			if err := b.favourites.Add(userKey, verb); err != nil {
				b.logger.Error("failed to add favourite", "error", err)
			}
		}
		b.send(message.Chat.ID, "Added. Favourites are drilled more often.")
	case "remove":
		for _, verb := range args[1:] {
			if err := b.favourites.Remove(userKey, verb); err != nil && !errors.Is(err, store.ErrNotFound) {
				b.logger.Error("failed to remove favourite", "error", err)
			}
		}
		b.send(message.Chat.ID, "Removed.")
	default:
		b.send(message.Chat.ID, "Usage: /fav add|remove|list [verb]")
	}
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("failed to send message", "error", err)
	}
}
