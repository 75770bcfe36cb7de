package controllers

import (
	"errors"
	"net/http"

	"advicerater/middlewares"
	"advicerater/models"
	"advicerater/services"

	"github.com/gin-gonic/gin"
)

// AdviceController serves the form and its JSON twin
type AdviceController struct {
	advice *services.AdviceService
}

func NewAdviceController(advice *services.AdviceService) *AdviceController {
	return &AdviceController{advice: advice}
}

type pageData struct {
	Configured      bool
	CredentialSaved bool
	CredentialError string
	Advice          string
	Circumstances   string
	Outcome         models.RatingOutcome
}

func (ac *AdviceController) page(c *gin.Context, status int, data pageData) {
	data.Configured = middlewares.CurrentSession(c).IsConfigured()
	c.HTML(status, "index.html", data)
}

// ShowForm renders the page for the current session
func (ac *AdviceController) ShowForm(c *gin.Context) {
	ac.page(c, http.StatusOK, pageData{})
}

// SaveCredentialForm handles the "Save API Key" button
func (ac *AdviceController) SaveCredentialForm(c *gin.Context) {
	var req models.CredentialRequest
	if err := c.ShouldBind(&req); err != nil {
		ac.page(c, http.StatusBadRequest, pageData{CredentialError: "Invalid form submission"})
		return
	}

	if err := middlewares.CurrentSession(c).SetCredential(req.Credential); err != nil {
		ac.page(c, http.StatusBadRequest, pageData{CredentialError: err.Error()})
		return
	}
	ac.page(c, http.StatusOK, pageData{CredentialSaved: true})
}

// RateForm handles the "Rate This Advice" button
func (ac *AdviceController) RateForm(c *gin.Context) {
	var req models.RatingRequest
	if err := c.ShouldBind(&req); err != nil {
		ac.page(c, http.StatusBadRequest, pageData{Outcome: models.RatingOutcome{Error: "Invalid form submission"}})
		return
	}

	outcome := ac.advice.Outcome(c.Request.Context(), middlewares.CurrentSession(c), req)
	ac.page(c, outcomeStatus(outcome), pageData{
		Advice:        req.Advice,
		Circumstances: req.Circumstances,
		Outcome:       outcome,
	})
}

// GetSession reports whether the caller has configured a credential
func (ac *AdviceController) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"configured": middlewares.CurrentSession(c).IsConfigured()})
}

// SaveCredential is the JSON form of SaveCredentialForm
func (ac *AdviceController) SaveCredential(c *gin.Context) {
	var req models.CredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := middlewares.CurrentSession(c).SetCredential(req.Credential); err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"configured": true, "message": "API Key configured successfully!"})
}

// Rate is the JSON form of RateForm
func (ac *AdviceController) Rate(c *gin.Context) {
	var req models.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	outcome := ac.advice.Outcome(c.Request.Context(), middlewares.CurrentSession(c), req)
	c.JSON(outcomeStatus(outcome), outcome)
}

func outcomeStatus(outcome models.RatingOutcome) int {
	switch {
	case outcome.Field != "":
		return http.StatusBadRequest
	case outcome.Throttled:
		return http.StatusTooManyRequests
	case outcome.Error != "":
		return http.StatusBadGateway
	default:
		return http.StatusOK
	}
}
