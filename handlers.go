package main

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"time"

	"fintrack/models"
	"fintrack/pkg/report"

	"github.com/gin-gonic/gin"
)

type api struct {
	auth   *AuthService
	ledger *LedgerService
}

func setupRoutes(r *gin.Engine, auth *AuthService, ledger *LedgerService) {
	h := &api{auth: auth, ledger: ledger}
	r.POST("/register", h.register)
	r.POST("/login", h.login)
	authGroup := r.Group("")
	authGroup.Use(h.jwtAuthMiddleware())
	authGroup.GET("/me", h.me)
	authGroup.PUT("/profile", h.updateProfile)
	authGroup.PUT("/currency", h.updateCurrency)
	authGroup.GET("/expenses", h.listExpenses)
	authGroup.GET("/expenses/summary", h.monthlySummary)
	authGroup.GET("/expenses/export", h.exportExpenses)
	authGroup.POST("/expenses", h.createExpense)
	authGroup.PUT("/expenses/:id", h.updateExpense)
	authGroup.DELETE("/expenses/:id", h.deleteExpense)
}

func (h *api) jwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			c.Abort()
			return
		}
		userID, err := h.auth.VerifyToken(authHeader[7:])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}
		c.Set("userID", userID)
		c.Next()
	}
}

// userFromContext fetches the authenticated user using the id set by jwtAuthMiddleware
func (h *api) userFromContext(c *gin.Context) (*models.User, bool) {
	idVal, _ := c.Get("userID")
	id, ok := idVal.(uint)
	if !ok {
		return nil, false
	}
	user, err := h.auth.CurrentUser(id)
	if err != nil {
		return nil, false
	}
	return user, true
}

// writeError maps a service error onto the response taxonomy.
func writeError(c *gin.Context, err error) {
	switch {
	case isValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrTransactionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}

// authResponse is the public profile plus a fresh bearer token.
func authResponse(user *models.User, token string) gin.H {
	return gin.H{
		"id":       user.ID,
		"name":     user.Name,
		"email":    user.Email,
		"currency": user.Currency,
		"token":    token,
	}
}

func (h *api) register(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.auth.Register(req.Name, req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	token, err := h.auth.IssueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	c.JSON(http.StatusCreated, authResponse(user, token))
}

func (h *api) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	token, err := h.auth.IssueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, authResponse(user, token))
}

func (h *api) me(c *gin.Context) {
	idVal, _ := c.Get("userID")
	id, _ := idVal.(uint)
	user, err := h.auth.CurrentUser(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *api) updateProfile(c *gin.Context) {
	idVal, _ := c.Get("userID")
	id, _ := idVal.(uint)
	var req struct {
		Name            string `json:"name"`
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.auth.UpdateProfile(id, ProfileUpdate{
		Name:            req.Name,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	token, err := h.auth.IssueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, authResponse(user, token))
}

func (h *api) updateCurrency(c *gin.Context) {
	idVal, _ := c.Get("userID")
	id, _ := idVal.(uint)
	var req struct {
		Currency string `json:"currency"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.auth.UpdateCurrency(id, req.Currency)
	if err != nil {
		writeError(c, err)
		return
	}
	token, err := h.auth.IssueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, authResponse(user, token))
}

func (h *api) createExpense(c *gin.Context) {
	user, ok := h.userFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req struct {
		Description string   `json:"description" binding:"required"`
		Amount      *float64 `json:"amount" binding:"required"`
		Category    string   `json:"category" binding:"required"`
		Type        string   `json:"type" binding:"required"`
		Date        string   `json:"date"` // optional RFC3339 or YYYY-MM-DD
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in := NewTransaction{
		Description: req.Description,
		Amount:      *req.Amount,
		Category:    req.Category,
		Type:        req.Type,
	}
	if req.Date != "" {
		t, err := parseDate(req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, use RFC3339 or YYYY-MM-DD"})
			return
		}
		in.Date = t
	}
	tx, err := h.ledger.Add(user, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}

func (h *api) updateExpense(c *gin.Context) {
	user, ok := h.userFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	id, ok := expenseID(c)
	if !ok {
		return
	}
	var req struct {
		Description *string  `json:"description"`
		Amount      *float64 `json:"amount"`
		Category    *string  `json:"category"`
		Type        *string  `json:"type"`
		Date        *string  `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patch := TransactionPatch{
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Type:        req.Type,
	}
	if req.Date != nil {
		t, err := parseDate(*req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, use RFC3339 or YYYY-MM-DD"})
			return
		}
		patch.Date = &t
	}
	tx, err := h.ledger.Update(user, id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

func (h *api) deleteExpense(c *gin.Context) {
	user, ok := h.userFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	id, ok := expenseID(c)
	if !ok {
		return
	}
	if err := h.ledger.Delete(user, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "expense deleted successfully"})
}

func (h *api) listExpenses(c *gin.Context) {
	user, ok := h.userFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	items, err := h.ledger.List(user, c.Query("month"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *api) monthlySummary(c *gin.Context) {
	user, ok := h.userFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	month := c.Query("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'month' query parameter"})
		return
	}
	sum, err := h.ledger.Summary(user, month)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (h *api) exportExpenses(c *gin.Context) {
	user, ok := h.userFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	month := c.Query("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month parameter is required (YYYY-MM)"})
		return
	}
	export, items, err := h.ledger.Export(user, month)
	if err != nil {
		writeError(c, err)
		return
	}
	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, export)
		return
	}
	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=expenses-"+month+".csv")
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// expenseID parses the :id path parameter, writing a 400 on failure.
func expenseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expense id"})
		return 0, false
	}
	return uint(id), true
}

// parseDate accepts RFC3339 timestamps or bare dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
