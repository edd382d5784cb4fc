// --- lightwork-server/handlers/page_handlers.go ---
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lightwork-server/content"
	"lightwork-server/models"
	"lightwork-server/quiz"
	"lightwork-server/session"
	"lightwork-server/utils"
)

// ShowPage renders the article with the visitor's quiz state.
// GET /?band=N
func ShowPage(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, s, ok := session.FromContext(c)
		if !ok {
			id, s = env.Sessions.Load(c)
		}
		// Issue the cookie on first visit so the session id is stable.
		if err := env.Sessions.Save(c, id, s); err != nil {
			c.HTML(http.StatusInternalServerError, content.ErrorTemplate, gin.H{
				"Title":  env.Page.Title,
				"Status": "Something went wrong",
				"Error":  "The quiz could not be started. Please reload the page.",
			})
			return
		}

		spectrumState, band := selectBand(env, c.Query("band"))
		c.HTML(http.StatusOK, content.PageTemplate, gin.H{
			"Title":     env.Page.Title,
			"Page":      env.Page,
			"Quiz":      env.Bank.View(s),
			"Spectrum":  spectrumState,
			"BandParam": band,
		})
	}
}

// AnswerQuestion handles an option button.
// POST /quiz/answer
func AnswerQuestion(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form models.AnswerForm
		if err := c.ShouldBind(&form); err != nil {
			redirectToQuiz(c, env, c.PostForm("band"))
			return
		}
		_, _ = transition(c, env, func(s quiz.Session) (quiz.Session, error) {
			return env.Bank.SelectAnswer(s, *form.Option)
		})
		redirectToQuiz(c, env, form.Band)
	}
}

// NextQuestion handles the "Next Question" and "See Results" controls.
// POST /quiz/next
func NextQuestion(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, _ = transition(c, env, env.Bank.Advance)
		redirectToQuiz(c, env, c.PostForm("band"))
	}
}

// ResetQuiz handles "Take Quiz Again".
// POST /quiz/reset
func ResetQuiz(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, _ = restart(c, env)
		redirectToQuiz(c, env, c.PostForm("band"))
	}
}

// redirectToQuiz sends the browser back to the quiz, keeping a valid band
// selection. Rejected transitions land here too, which makes them no-ops.
func redirectToQuiz(c *gin.Context, env *Env, band string) {
	_, param := selectBand(env, band)
	c.Redirect(http.StatusSeeOther, utils.PageURL(param, "quiz"))
}
