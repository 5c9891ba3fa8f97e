package v1

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/condoboard/backend/internal/httputil"
	"github.com/condoboard/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userIDKey = "userID"

func RegisterAuthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/register", httputil.OptionsPost)
		r.POST("/register", Register)
	}
	{
		r.OPTIONS("/login", httputil.OptionsPost)
		r.POST("/login", Login)
	}
}

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// Only acceptable for local development, the deployment
		// guide requires JWT_SECRET to be set.
		secret = "condoboard-dev-secret"
	}

	return []byte(secret)
}

// newToken issues a signed token for the user, valid for 24 hours.
func newToken(user models.User) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(user.ID, 10),
		IssuedAt:  jwt.NewNumericDate(time.Now().In(time.UTC)),
		ExpiresAt: jwt.NewNumericDate(time.Now().In(time.UTC).Add(24 * time.Hour)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
}

// Authenticate verifies the bearer token and stores the user ID in the
// request context. All routes below /v1 except the auth routes are
// behind it.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{
				Error: errNoAuthorization.Error(),
			})
			return
		}

		token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), &jwt.RegisteredClaims{}, func(_ *jwt.Token) (any, error) {
			return jwtSecret(), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{
				Error: errInvalidToken.Error(),
			})
			return
		}

		subject, err := token.Claims.GetSubject()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{
				Error: errInvalidToken.Error(),
			})
			return
		}

		id, err := strconv.ParseUint(subject, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{
				Error: errInvalidToken.Error(),
			})
			return
		}

		c.Set(userIDKey, id)
		c.Next()
	}
}

func currentUserID(c *gin.Context) uint64 {
	return c.GetUint64(userIDKey)
}

// @Summary		Register
// @Description	Creates a new user account
// @Tags			Authentication
// @Produce		json
// @Success		201			{object}	LoginResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			credentials	body		Credentials	true	"Credentials"
// @Router			/v1/auth/register [post]
func Register(c *gin.Context) {
	var credentials Credentials

	err := httputil.BindData(c, &credentials)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	user := models.User{
		Username: credentials.Username,
	}
	err = user.SetPassword(credentials.Password)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	token, err := newToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: models.ErrGeneral.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, LoginResponse{
		Data: &Session{
			Username: user.Username,
			Token:    token,
		},
	})
}

// @Summary		Login
// @Description	Issues a bearer token for the user
// @Tags			Authentication
// @Produce		json
// @Success		200			{object}	LoginResponse
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			credentials	body		Credentials	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var credentials Credentials

	err := httputil.BindData(c, &credentials)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var user models.User
	err = models.DB.Where(&models.User{Username: strings.TrimSpace(credentials.Username)}).First(&user).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			c.JSON(http.StatusUnauthorized, httpError{
				Error: errLoginFailed.Error(),
			})
			return
		}
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if !user.CheckPassword(credentials.Password) {
		c.JSON(http.StatusUnauthorized, httpError{
			Error: errLoginFailed.Error(),
		})
		return
	}

	token, err := newToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: models.ErrGeneral.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Data: &Session{
			Username: user.Username,
			Token:    token,
		},
	})
}
