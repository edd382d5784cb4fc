// --- lightwork-server/handlers/api_handlers.go ---
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"lightwork-server/models"
	"lightwork-server/quiz"
	"lightwork-server/session"
	"lightwork-server/spectrum"
	"lightwork-server/utils"
)

// Health reports liveness.
// GET /healthz
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// GetQuiz returns the current quiz view.
// GET /api/v1/quiz
func GetQuiz(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, s, ok := session.FromContext(c)
		if !ok {
			id, s = env.Sessions.Load(c)
		}
		if err := env.Sessions.Save(c, id, s); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start quiz session"})
			return
		}
		c.JSON(http.StatusOK, env.Bank.View(s))
	}
}

// PostAnswer answers the current question.
// POST /api/v1/quiz/answer
func PostAnswer(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AnswerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s, err := transition(c, env, func(s quiz.Session) (quiz.Session, error) {
			return env.Bank.SelectAnswer(s, *req.Option)
		})
		respondTransition(c, env, s, err)
	}
}

// PostAdvance moves to the next question or to the results.
// POST /api/v1/quiz/advance
func PostAdvance(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := transition(c, env, env.Bank.Advance)
		respondTransition(c, env, s, err)
	}
}

// PostReset starts a new session.
// POST /api/v1/quiz/reset
func PostReset(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := restart(c, env)
		respondTransition(c, env, s, err)
	}
}

// respondTransition maps a transition result onto a status code. Rejections
// carry the unchanged view so clients can resync.
func respondTransition(c *gin.Context, env *Env, s quiz.Session, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, env.Bank.View(s))
	case errors.Is(err, quiz.ErrOptionOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "quiz": env.Bank.View(s)})
	case errors.Is(err, errRejected):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "quiz": env.Bank.View(s)})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save quiz session"})
	}
}

// GetSpectrum lists the spectrum bands.
// GET /api/v1/spectrum
func GetSpectrum(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"scale":    env.Page.Spectrum.Scale,
			"bands":    env.Spectrum.Bands(),
			"insights": env.Page.Spectrum.Insights,
		})
	}
}

// GetSpectrumBand returns the detail for one band.
// GET /api/v1/spectrum/:index
func GetSpectrumBand(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := utils.ParseIndex(c.Param("index"), spectrum.BandCount)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		band, err := env.Spectrum.Band(index)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, band)
	}
}

// GetQuizStats reports aggregate completions when a database is configured.
// GET /api/v1/quiz/stats
func GetQuizStats(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		if env.Stats == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Completion statistics are not enabled"})
			return
		}
		stats, err := env.Stats.CompletionStats(c.Request.Context())
		if err != nil {
			log.Printf("Error querying completion stats: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve completion statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
