package v1

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// contextUserID is the gin context key the authentication middleware stores
// the authenticated user's ID under.
const contextUserID = "userID"

const tokenLifetime = 24 * time.Hour

// RegisterAuthRoutes registers the routes for registration and login with
// the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", OptionsRegister)
	r.POST("/register", Register)

	r.OPTIONS("/login", OptionsLogin)
	r.POST("/login", Login)
}

func OptionsRegister(c *gin.Context) {
	httputil.OptionsPost(c)
}

func OptionsLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

type RegisterEditable struct {
	Name     string `json:"name" example:"Jane Doe"`
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

type LoginEditable struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

// User is the representation of a User in API v1. The password hash is
// never part of it.
type User struct {
	models.DefaultModel
	Name  string `json:"name" example:"Jane Doe"`
	Email string `json:"email" example:"jane@example.com"`
}

func newUser(model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Email:        model.Email,
	}
}

// Session is a token and the user it authenticates.
type Session struct {
	Token string `json:"token"` // Bearer token for the Authorization header
	User  User   `json:"user"`  // The authenticated user
}

type LoginResponse struct {
	Error *string  `json:"error" example:"the email or password is incorrect"` // The error, if any occurred
	Data  *Session `json:"data"`                                               // The session, if authentication was successful
}

// Register creates a user and returns a token for it.
func Register(c *gin.Context) {
	var editable RegisterEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoginResponse{
			Error: &e,
		})
		return
	}

	if len(editable.Password) < 8 {
		e := errPasswordTooShort.Error()
		c.JSON(http.StatusBadRequest, LoginResponse{
			Error: &e,
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(editable.Password), bcrypt.DefaultCost)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, LoginResponse{
			Error: &e,
		})
		return
	}

	user := models.User{
		Name:     editable.Name,
		Email:    editable.Email,
		Password: string(hash),
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoginResponse{
			Error: &e,
		})
		return
	}

	token, err := newToken(user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, LoginResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, LoginResponse{
		Data: &Session{Token: token, User: newUser(user)},
	})
}

// Login verifies the credentials and returns a token.
//
// A wrong email and a wrong password are indistinguishable in the response.
func Login(c *gin.Context) {
	var editable LoginEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoginResponse{
			Error: &e,
		})
		return
	}

	var user models.User
	err = models.DB.Where(&models.User{
		Email: strings.ToLower(strings.TrimSpace(editable.Email)),
	}).First(&user).Error
	if err != nil {
		e := errInvalidCredentials.Error()
		c.JSON(http.StatusUnauthorized, LoginResponse{
			Error: &e,
		})
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(editable.Password))
	if err != nil {
		e := errInvalidCredentials.Error()
		c.JSON(http.StatusUnauthorized, LoginResponse{
			Error: &e,
		})
		return
	}

	token, err := newToken(user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, LoginResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Data: &Session{Token: token, User: newUser(user)},
	})
}

// Middleware authenticates requests with a Bearer token and stores the
// user's ID in the context. Requests without a valid token are aborted
// with 401.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: errUnauthorized.Error()})
			return
		}

		claims := jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(raw, &claims, func(_ *jwt.Token) (any, error) {
			return jwtSecret(), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: errUnauthorized.Error()})
			return
		}

		id, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: errUnauthorized.Error()})
			return
		}

		c.Set(contextUserID, id)
		c.Next()
	}
}

// userID returns the ID of the authenticated user. Only valid on routes
// behind Middleware.
func userID(c *gin.Context) uuid.UUID {
	return c.MustGet(contextUserID).(uuid.UUID)
}

func newToken(userID uuid.UUID) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
	})

	return token.SignedString(jwtSecret())
}

func jwtSecret() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}

	// Fallback for development setups. Production deployments must set
	// JWT_SECRET.
	return []byte("spendwise-insecure-dev-secret")
}
