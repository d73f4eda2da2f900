package fakeops

import (
	"encoding/json"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/to-api-contract/internal/logger"
	"github.com/MKhiriev/to-api-contract/models"
)

// login checks the {"u", "p"} body and on success sets the mojolicious
// session cookie and an access_token JWT cookie.
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "parsing login request body: "+err.Error())
		return
	}

	if req.User != s.user || req.Password != s.password {
		log.Warn().Err(ErrInvalidCredentials).Str("user", req.User).Send()
		writeError(w, r, http.StatusUnauthorized, "Invalid username or password.")
		return
	}

	now := s.now()
	expires := now.Add(s.tokenTTL)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   req.User,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}).SignedString(s.signKey)
	if err != nil {
		log.Err(err).Msg("signing access token failed")
		writeError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	http.SetCookie(w, &http.Cookie{Name: mojoliciousName, Value: uuid.NewString(), Path: "/", Expires: expires, HttpOnly: true})
	http.SetCookie(w, &http.Cookie{Name: accessTokenName, Value: token, Path: "/", Expires: expires, HttpOnly: true})

	writeEnvelope(w, r, http.StatusOK, nil, levelSuccess, "Successfully logged in.")
}

// auth rejects requests without a valid access_token cookie.
func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(accessTokenName)
		if err != nil {
			log.Err(ErrNoAccessToken).Send()
			writeError(w, r, http.StatusUnauthorized, "Unauthorized, please log in.")
			return
		}

		_, err = jwt.ParseWithClaims(cookie.Value, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
			return s.signKey, nil
		}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeError(w, r, http.StatusUnauthorized, "Unauthorized, please log in.")
			return
		}

		next.ServeHTTP(w, r)
	})
}
