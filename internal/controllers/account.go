package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zhangben/backend/internal/httputil"
	"github.com/zhangben/backend/internal/models"
)

// Account is the API representation of an Account.
type Account struct {
	models.Account
	Links struct {
		Self string `json:"self" example:"https://example.com/api/v1/accounts/4"` // The account itself
	} `json:"links"`
}

func (a *Account) links(c *gin.Context) {
	a.Links.Self = fmt.Sprintf("%s/accounts/%d", httputil.RequestPathV1(c), a.ID)
}

type AccountCreate struct {
	Name string `json:"name" binding:"required" example:"招商银行 ****1234"`
}

type AccountListResponse struct {
	Data []Account `json:"data"`
}

type AccountResponse struct {
	Data Account `json:"data"`
}

func RegisterAccountRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetAccounts)
		r.POST("", CreateAccount)
	}
	{
		r.OPTIONS("/:accountId", httputil.OptionsGetDelete)
		r.GET("/:accountId", GetAccount)
		r.DELETE("/:accountId", DeleteAccount)
	}
}

// GetAccounts returns all accounts of the demo user.
func GetAccounts(c *gin.Context) {
	var accounts []models.Account
	if err := models.DB.Where(&models.Account{UserID: defaultUserID}).Order("name ASC").Find(&accounts).Error; err != nil {
		errorHandler(c, err)
		return
	}

	// An empty list, not null, when there are no resources
	data := make([]Account, 0, len(accounts))
	for _, account := range accounts {
		a := Account{Account: account}
		a.links(c)
		data = append(data, a)
	}

	c.JSON(http.StatusOK, AccountListResponse{Data: data})
}

// GetAccount returns a single account by its ID.
func GetAccount(c *gin.Context) {
	id, err := httputil.ParseID(c, "accountId")
	if err != nil {
		return
	}

	var account models.Account
	if err := models.DB.First(&account, "id = ? AND user_id = ?", id, defaultUserID).Error; err != nil {
		errorHandler(c, err)
		return
	}

	a := Account{Account: account}
	a.links(c)

	c.JSON(http.StatusOK, AccountResponse{Data: a})
}

// CreateAccount creates a new account. Creating an account whose name
// already exists returns the existing account.
func CreateAccount(c *gin.Context) {
	var create AccountCreate
	if err := httputil.BindData(c, &create); err != nil {
		return
	}

	account, err := models.AccountForName(models.DB, defaultUserID, create.Name)
	if err != nil {
		errorHandler(c, err)
		return
	}

	a := Account{Account: account}
	a.links(c)

	c.JSON(http.StatusCreated, AccountResponse{Data: a})
}

// DeleteAccount deletes an account. Accounts still referenced by
// transactions cannot be deleted.
func DeleteAccount(c *gin.Context) {
	id, err := httputil.ParseID(c, "accountId")
	if err != nil {
		return
	}

	var account models.Account
	if err := models.DB.First(&account, "id = ? AND user_id = ?", id, defaultUserID).Error; err != nil {
		errorHandler(c, err)
		return
	}

	count, err := account.TransactionCount(models.DB)
	if err != nil {
		errorHandler(c, err)
		return
	}
	if count > 0 {
		httputil.NewError(c, http.StatusBadRequest, models.ErrResourceInUse)
		return
	}

	if err := models.DB.Delete(&account).Error; err != nil {
		errorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
