package v1

import (
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/orbita-crm/backend/internal/httputil"
	"github.com/orbita-crm/backend/internal/importer"
	"github.com/orbita-crm/backend/internal/models"
)

// RegisterImportRoutes registers the routes for imports.
func RegisterImportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/statement", OptionsImportStatement)
		r.POST("/statement", ImportStatement)

		r.OPTIONS("/statement/confirm-account", OptionsImportStatementConfirmAccount)
		r.POST("/statement/confirm-account", ImportStatementConfirmAccount)

		r.OPTIONS("/statement/apply-stated-balance", OptionsApplyStatedBalance)
		r.POST("/statement/apply-stated-balance", ApplyStatedBalance)
	}
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	return formFile.Open()
}

// outcomeResponse loads the account the statement was imported for and
// assembles the report.
func outcomeResponse(c *gin.Context, outcome importer.Outcome) {
	var account models.Account
	err := first(models.DB, &account, outcome.AccountID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportOutcomeResponse{
			Error: &s,
		})
		return
	}

	data := newImportOutcome(outcome, newAccount(account))
	c.JSON(http.StatusCreated, ImportOutcomeResponse{Data: &data})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import/statement [options]
func OptionsImportStatement(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import/statement/confirm-account [options]
func OptionsImportStatementConfirmAccount(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import/statement/apply-stated-balance [options]
func OptionsApplyStatedBalance(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import bank statement
// @Description	Imports a bank statement in the 1C client bank exchange format. When the statement's account is unknown, HTTP 409 with the unknown account data is returned and nothing is imported; confirm the account via the confirm-account endpoint.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	ImportOutcomeResponse
// @Failure		400		{object}	ImportOutcomeResponse
// @Failure		409		{object}	ImportOutcomeResponse
// @Failure		500		{object}	ImportOutcomeResponse
// @Param			file	formData	file	true	"Statement file"
// @Router			/v1/import/statement [post]
func ImportStatement(c *gin.Context) {
	f, err := getUploadedFile(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportOutcomeResponse{
			Error: &s,
		})
		return
	}

	outcome, signal, err := importer.Run(models.DB, f, time.Now())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportOutcomeResponse{
			Error: &s,
		})
		return
	}

	if signal != nil {
		c.JSON(http.StatusConflict, ImportOutcomeResponse{
			UnknownAccount: signal,
		})
		return
	}

	outcomeResponse(c, outcome)
}

// @Summary		Import bank statement for a new account
// @Description	Imports a bank statement after the user confirmed the creation of the unknown account. The optional accountName form field overrides the inferred bank name.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201			{object}	ImportOutcomeResponse
// @Failure		400			{object}	ImportOutcomeResponse
// @Failure		500			{object}	ImportOutcomeResponse
// @Param			file		formData	file	true	"Statement file"
// @Param			accountName	formData	string	false	"Name for the new account"
// @Router			/v1/import/statement/confirm-account [post]
func ImportStatementConfirmAccount(c *gin.Context) {
	f, err := getUploadedFile(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportOutcomeResponse{
			Error: &s,
		})
		return
	}

	outcome, err := importer.RunConfirmed(models.DB, f, c.PostForm("accountName"), time.Now())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportOutcomeResponse{
			Error: &s,
		})
		return
	}

	outcomeResponse(c, outcome)
}

// @Summary		Apply stated closing balance
// @Description	Force-sets the account balance to the closing balance stated by an imported file. This is the only way a file's stated figure overrides the transaction-derived balance.
// @Tags			Import
// @Accept			json
// @Produce		json
// @Success		200		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		404		{object}	AccountResponse
// @Param			balance	body		ApplyStatedBalanceEditable	true	"Stated balance"
// @Router			/v1/import/statement/apply-stated-balance [post]
func ApplyStatedBalance(c *gin.Context) {
	var editable ApplyStatedBalanceEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &s,
		})
		return
	}

	account, err := importer.ApplyStatedClosingBalance(models.DB, importer.Outcome{
		AccountID:            editable.AccountID,
		StatedClosingBalance: editable.StatedClosingBalance,
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &s,
		})
		return
	}

	data := newAccount(account)
	c.JSON(http.StatusOK, AccountResponse{Data: &data})
}
