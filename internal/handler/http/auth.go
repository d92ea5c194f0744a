package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-sign-gate/internal/logger"
	"github.com/MKhiriev/go-sign-gate/models"
)

// home shows the signed-in user's page or sends the client to sign in.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	username, ok := h.sessions.Username(r)
	if !ok {
		http.Redirect(w, r, "/signin", http.StatusFound)
		return
	}

	h.render(w, r, homePage, http.StatusOK, pageData{Username: username})
}

func (h *Handler) signUpForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, signUpPage, http.StatusOK, pageData{})
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, err := credentialsFromForm(r)
	if err != nil {
		log.Err(err).Msg("invalid sign-up form was passed")
		status, message := responseFromError(err)
		h.render(w, r, signUpPage, status, pageData{Error: message})
		return
	}

	if err = h.services.AuthService.Register(ctx, creds); err != nil {
		status, message := responseFromError(err)
		log.Err(err).Object("credentials", creds).Int("status", status).Msg("sign-up failed")
		h.render(w, r, signUpPage, status, pageData{Username: creds.Username, Error: message})
		return
	}

	log.Info().Object("credentials", creds).Msg("user signed up")
	h.render(w, r, signInPage, http.StatusOK, pageData{Username: creds.Username, Success: msgSignedUp})
}

func (h *Handler) signInForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, signInPage, http.StatusOK, pageData{})
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, err := credentialsFromForm(r)
	if err != nil {
		log.Err(err).Msg("invalid sign-in form was passed")
		status, message := responseFromError(err)
		h.render(w, r, signInPage, status, pageData{Error: message})
		return
	}

	account, err := h.services.AuthService.Authenticate(ctx, creds)
	if err != nil {
		status, message := responseFromError(err)
		log.Err(err).Object("credentials", creds).Int("status", status).Msg("sign-in failed")
		h.render(w, r, signInPage, status, pageData{Username: creds.Username, Error: message})
		return
	}

	if err = h.sessions.Establish(w, account.Username); err != nil {
		log.Err(err).Object("credentials", creds).Msg("error establishing session")
		h.render(w, r, signInPage, http.StatusInternalServerError, pageData{Username: creds.Username, Error: msgInternal})
		return
	}

	log.Info().Object("credentials", creds).Msg("user signed in")
	http.Redirect(w, r, "/", http.StatusFound)
}

// signOut clears the session whether or not one exists.
func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	h.sessions.Terminate(w)
	http.Redirect(w, r, "/signin", http.StatusFound)
}

// credentialsFromForm reads the username and password fields of a submitted
// form. Both fields must be present; empty values are accepted.
func credentialsFromForm(r *http.Request) (models.Credentials, error) {
	if err := r.ParseForm(); err != nil {
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	if !r.PostForm.Has("username") || !r.PostForm.Has("password") {
		return models.Credentials{}, ErrMissingFormField
	}

	return models.Credentials{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}, nil
}
