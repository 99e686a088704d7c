package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/zhangben/backend/internal/httputil"
	"github.com/zhangben/backend/internal/models"
)

// defaultUserID scopes all handlers to the demo user created by the seed.
const defaultUserID uint = 1

// Transaction is the API representation of a Transaction.
type Transaction struct {
	models.Transaction
	Links struct {
		Self string `json:"self" example:"https://example.com/api/v1/transactions/17"` // The transaction itself
	} `json:"links"`
}

func (t *Transaction) links(c *gin.Context) {
	t.Links.Self = fmt.Sprintf("%s/transactions/%d", httputil.RequestPathV1(c), t.ID)
}

type TransactionCreate struct {
	Amount     decimal.Decimal     `json:"amount" binding:"required" example:"23.50"`
	Type       models.CategoryType `json:"type" example:"expense"`
	Time       time.Time           `json:"time" example:"2023-03-15T12:30:00Z"`
	Note       string              `json:"note" example:"午餐"`
	CategoryID uint                `json:"categoryId" binding:"required" example:"2"`
	AccountID  uint                `json:"accountId" binding:"required" example:"4"`
}

type TransactionListResponse struct {
	Data []Transaction `json:"data"`
}

type TransactionResponse struct {
	Data Transaction `json:"data"`
}

func RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}
	{
		r.OPTIONS("/import", httputil.OptionsPost)
		r.POST("/import", ImportTransactions)
	}
	{
		r.OPTIONS("/:transactionId", httputil.OptionsGetDelete)
		r.GET("/:transactionId", GetTransaction)
		r.DELETE("/:transactionId", DeleteTransaction)
	}
}

// GetTransactions returns all transactions of the demo user, newest first.
func GetTransactions(c *gin.Context) {
	var transactions []models.Transaction
	err := models.DB.
		Preload("Category").
		Preload("Account").
		Where(&models.Transaction{UserID: defaultUserID}).
		Order("time DESC").
		Find(&transactions).Error
	if err != nil {
		errorHandler(c, err)
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		t := Transaction{Transaction: transaction}
		t.links(c)
		data = append(data, t)
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: data})
}

// GetTransaction returns a single transaction by its ID.
func GetTransaction(c *gin.Context) {
	id, err := httputil.ParseID(c, "transactionId")
	if err != nil {
		return
	}

	var transaction models.Transaction
	err = models.DB.
		Preload("Category").
		Preload("Account").
		First(&transaction, "id = ? AND user_id = ?", id, defaultUserID).Error
	if err != nil {
		errorHandler(c, err)
		return
	}

	t := Transaction{Transaction: transaction}
	t.links(c)

	c.JSON(http.StatusOK, TransactionResponse{Data: t})
}

// CreateTransaction creates a single transaction from a JSON body.
func CreateTransaction(c *gin.Context) {
	var create TransactionCreate
	if err := httputil.BindData(c, &create); err != nil {
		return
	}

	if !create.Amount.IsPositive() {
		httputil.NewError(c, http.StatusBadRequest, models.ErrAmountNotPositive)
		return
	}

	if create.Type != models.Income {
		create.Type = models.Expense
	}

	if create.Time.IsZero() {
		create.Time = time.Now().In(time.UTC)
	}

	// The referenced category and account must belong to the user.
	var category models.Category
	if err := models.DB.First(&category, "id = ? AND user_id = ?", create.CategoryID, defaultUserID).Error; err != nil {
		errorHandler(c, err)
		return
	}

	var account models.Account
	if err := models.DB.First(&account, "id = ? AND user_id = ?", create.AccountID, defaultUserID).Error; err != nil {
		errorHandler(c, err)
		return
	}

	transaction := models.Transaction{
		Amount:     create.Amount,
		Type:       create.Type,
		Time:       create.Time,
		Note:       create.Note,
		CategoryID: category.ID,
		AccountID:  account.ID,
		UserID:     defaultUserID,
	}
	if err := models.DB.Create(&transaction).Error; err != nil {
		errorHandler(c, err)
		return
	}

	t := Transaction{Transaction: transaction}
	t.links(c)

	c.JSON(http.StatusCreated, TransactionResponse{Data: t})
}

// DeleteTransaction deletes a transaction.
func DeleteTransaction(c *gin.Context) {
	id, err := httputil.ParseID(c, "transactionId")
	if err != nil {
		return
	}

	var transaction models.Transaction
	if err := models.DB.First(&transaction, "id = ? AND user_id = ?", id, defaultUserID).Error; err != nil {
		errorHandler(c, err)
		return
	}

	if err := models.DB.Delete(&transaction).Error; err != nil {
		errorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
