// --- lightwork-server/handlers/handlers.go ---
package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lightwork-server/content"
	"lightwork-server/middleware"
	"lightwork-server/models"
	"lightwork-server/quiz"
	"lightwork-server/session"
	"lightwork-server/spectrum"
	"lightwork-server/utils"
)

// CompletionRecorder receives every session that reaches the results screen.
type CompletionRecorder interface {
	RecordCompletion(ctx context.Context, sessionID string, score, total int, band string) error
}

// StatsSource reports aggregate completions. Optional.
type StatsSource interface {
	CompletionStats(ctx context.Context) (*models.CompletionStats, error)
}

// Env bundles the read-only page state shared by all handlers.
type Env struct {
	Page     *models.Page
	Bank     *quiz.Bank
	Spectrum *spectrum.Table
	Sessions *session.Manager
	Recorder CompletionRecorder
	Stats    StatsSource
}

// RegisterRoutes wires the page, the quiz form actions and the JSON API.
func RegisterRoutes(router *gin.Engine, env *Env) {
	router.StaticFS("/static", http.FS(content.Static()))
	router.GET("/healthz", Health())

	page := router.Group("/")
	page.Use(middleware.NoStore(), env.Sessions.Middleware())
	{
		page.GET("/", ShowPage(env))
		page.POST("/quiz/answer", AnswerQuestion(env))
		page.POST("/quiz/next", NextQuestion(env))
		page.POST("/quiz/reset", ResetQuiz(env))
	}

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/spectrum", GetSpectrum(env))
		apiV1.GET("/spectrum/:index", GetSpectrumBand(env))
		apiV1.GET("/quiz/stats", GetQuizStats(env))

		quizAPI := apiV1.Group("/quiz")
		quizAPI.Use(middleware.NoStore(), env.Sessions.Middleware())
		quizAPI.GET("", GetQuiz(env))
		quizAPI.POST("/answer", PostAnswer(env))
		quizAPI.POST("/advance", PostAdvance(env))
		quizAPI.POST("/reset", PostReset(env))
	}

	router.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, content.ErrorTemplate, gin.H{
			"Title":  env.Page.Title,
			"Status": "Page not found",
			"Error":  "There is nothing at " + c.Request.URL.Path + ".",
		})
	})
}

// errRejected wraps a state-machine rejection so callers can tell it apart
// from a failure to persist the new state.
var errRejected = errors.New("transition rejected")

// transition applies op to the request's session, saves the result and
// reports a newly completed session. On rejection the stored session is left
// as it was.
func transition(c *gin.Context, env *Env, op func(quiz.Session) (quiz.Session, error)) (quiz.Session, error) {
	id, current, ok := session.FromContext(c)
	if !ok {
		id, current = env.Sessions.Load(c)
	}

	next, err := op(current)
	if err != nil {
		log.Printf("Quiz session %s: %v", id, err)
		return current, errors.Join(errRejected, err)
	}
	if err := env.Sessions.Save(c, id, next); err != nil {
		log.Printf("Error saving quiz session %s: %v", id, err)
		return current, err
	}
	if next.Completed && !current.Completed {
		recordCompletion(c, env, id, next)
	}
	return next, nil
}

// restart replaces the request's session with a fresh one under a new id.
func restart(c *gin.Context, env *Env) (quiz.Session, error) {
	_, current, ok := session.FromContext(c)
	if !ok {
		_, current = env.Sessions.Load(c)
	}
	next := env.Bank.Reset(current)
	if err := env.Sessions.Save(c, session.NewID(), next); err != nil {
		log.Printf("Error saving reset quiz session: %v", err)
		return current, err
	}
	return next, nil
}

func recordCompletion(c *gin.Context, env *Env, id string, s quiz.Session) {
	if env.Recorder == nil {
		return
	}
	band := quiz.BandFor(s.Score)
	if err := env.Recorder.RecordCompletion(c.Request.Context(), id, s.Score, env.Bank.Len(), band.Name); err != nil {
		log.Printf("Error recording quiz completion for session %s: %v", id, err)
	}
}

type bandView struct {
	Index    int
	Band     models.SpectrumBand
	Selected bool
}

type spectrumView struct {
	Bands    []bandView
	Selected *models.SpectrumBand
}

// selectBand resolves the band query value. An invalid value selects nothing
// and is dropped from links.
func selectBand(env *Env, raw string) (spectrumView, string) {
	sel := spectrum.Selection{}
	param := ""
	if raw != "" {
		if i, err := utils.ParseIndex(raw, spectrum.BandCount); err == nil {
			if next, err := env.Spectrum.Select(sel, i); err == nil {
				sel = next
				param = strconv.Itoa(i)
			}
		}
	}

	view := spectrumView{}
	selected, hasSelection := sel.Index()
	for i, b := range env.Spectrum.Bands() {
		view.Bands = append(view.Bands, bandView{Index: i, Band: b, Selected: hasSelection && i == selected})
	}
	if b, ok := env.Spectrum.Selected(sel); ok {
		view.Selected = &b
	}
	return view, param
}
