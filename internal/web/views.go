package web

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/gameon/handler"
	"github.com/dmitrymomot/gameon/internal/signup"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0-RC.5/bundles/datastar.js"

// Block ids group the controls sharing one .formData wrapper.
const (
	blockLocation   = "location"
	blockConditions = "conditions"
)

var blockOrder = []string{
	string(signup.FieldFirst),
	string(signup.FieldLast),
	string(signup.FieldEmail),
	string(signup.FieldBirthdate),
	string(signup.FieldQuantity),
	blockLocation,
	blockConditions,
}

// blockOf maps a display field to the block showing its error.
func blockOf(field signup.FieldID) string {
	switch {
	case field == signup.FieldConditions:
		return blockConditions
	case field == signup.FieldLocation || strings.HasPrefix(string(field), "location"):
		return blockLocation
	default:
		return string(field)
	}
}

// errorField is the display field whose state a block shows.
func errorField(block string) signup.FieldID {
	switch block {
	case blockConditions:
		return signup.FieldConditions
	case blockLocation:
		return signup.FieldID(signup.Cities[0].ID)
	default:
		return signup.FieldID(block)
	}
}

func blockID(block string) string { return "field-" + block }

type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(parts ...string) {
	for _, p := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, p)
	}
}

func (h *html) text(s string) { h.raw(templ.EscapeString(s)) }

func (h *html) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

func (h *html) flag(name string, on bool) {
	if on {
		h.raw(" ", name)
	}
}

func component(render func(h *html)) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &html{w: w}
		render(h)
		return h.err
	})
}

func validateAction(field signup.FieldID) string {
	return fmt.Sprintf("@post('/fields/%s/validate', {contentType: 'form'})", field)
}

// postForm renders a one-button form that posts with Datastar and still
// works without scripts.
func postForm(h *html, action, class string, button func(h *html)) {
	h.raw("<form")
	h.attr("class", class)
	h.attr("action", action)
	h.attr("method", "post")
	h.attr("data-on-submit", fmt.Sprintf("@post('%s')", action))
	h.raw(">")
	button(h)
	h.raw("</form>")
}

func closeButton(h *html, panel signup.Panel) {
	postForm(h, fmt.Sprintf("/modal/%s/close", panel), "close-form", func(h *html) {
		h.raw(`<button type="submit" class="close btn-close" aria-label="Fermer"></button>`)
	})
}

// openBlock writes the .formData wrapper with its error attributes.
func openBlock(h *html, block string, state PageState) {
	h.raw("<div")
	h.attr("id", blockID(block))
	h.attr("class", "formData")
	if e := state.errorOf(errorField(block)); e.Visible {
		h.attr("data-error-visible", "true")
		h.attr("data-error", e.Text)
	}
	h.raw(">")
}

func textInput(h *html, field signup.FieldID, kind, label, value, trigger string) {
	h.raw("<label")
	h.attr("for", string(field))
	h.raw(">")
	h.text(label)
	h.raw("</label><br>")
	h.raw("<input")
	h.attr("class", "text-control")
	h.attr("type", kind)
	h.attr("id", string(field))
	h.attr("name", string(field))
	h.attr("value", value)
	h.attr(trigger, validateAction(field))
	h.raw(">")
}

func checkbox(h *html, id, kind, name, value, label string, checked bool) {
	h.raw("<input")
	h.attr("class", "checkbox-input")
	h.attr("type", kind)
	h.attr("id", id)
	h.attr("name", name)
	h.attr("value", value)
	h.flag("checked", checked)
	h.raw("><label")
	h.attr("class", "checkbox-label")
	h.attr("for", id)
	h.raw(`><span class="checkbox-icon"></span>`)
	h.text(label)
	h.raw("</label>")
}

func renderBlock(h *html, block string, state PageState) {
	f := state.Form
	openBlock(h, block, state)
	switch block {
	case string(signup.FieldFirst):
		textInput(h, signup.FieldFirst, "text", "Prénom", f.First, "data-on-change")
	case string(signup.FieldLast):
		textInput(h, signup.FieldLast, "text", "Nom", f.Last, "data-on-change")
	case string(signup.FieldEmail):
		textInput(h, signup.FieldEmail, "email", "E-mail", f.Email, "data-on-change")
	case string(signup.FieldBirthdate):
		textInput(h, signup.FieldBirthdate, "date", "Date de naissance", f.Birthdate, "data-on-blur")
	case string(signup.FieldQuantity):
		textInput(h, signup.FieldQuantity, "number", "À combien de tournois GameOn avez-vous déjà participé ?", f.Quantity, "data-on-change")
	case blockLocation:
		h.raw(`<p class="text-label">A quel tournoi souhaitez-vous participer cette année ?</p>`)
		for _, c := range f.Choices() {
			checkbox(h, c.ID, "radio", string(signup.FieldLocation), c.Value, c.Value, c.Checked)
		}
	case blockConditions:
		checkbox(h, string(signup.FieldConditions), "checkbox", string(signup.FieldConditions), "on",
			"J'ai lu et accepté les conditions d'utilisation.", f.Conditions)
		h.raw("<br>")
		checkbox(h, "checkbox2", "checkbox", "checkbox2", "on",
			"Je suis d'accord pour être prévenu(e) des prochains évènements.", f.Newsletter)
	}
	h.raw("</div>")
}

// FieldBlock renders one .formData block. Its id lets a Datastar patch
// replace it in place.
func FieldBlock(block string, state PageState) templ.Component {
	return component(func(h *html) { renderBlock(h, block, state) })
}

func renderSignupForm(h *html, state PageState) {
	h.raw("<form")
	h.attr("id", "signup-form")
	h.attr("name", "reserve")
	h.attr("action", "/signup")
	h.attr("method", "post")
	h.flag("novalidate", true)
	h.attr("data-on-submit", "@post('/signup', {contentType: 'form'})")
	h.raw(">")
	for _, b := range blockOrder {
		renderBlock(h, b, state)
	}
	h.raw(`<input class="btn-submit button" type="submit" value="C'est parti"></form>`)
}

// SignupForm renders the form element alone.
func SignupForm(state PageState) templ.Component {
	return component(func(h *html) { renderSignupForm(h, state) })
}

func openPanel(h *html, panel signup.Panel, class string, state PageState) {
	display := "none"
	if state.visible(panel) {
		display = "block"
	}
	h.raw("<div")
	h.attr("id", "panel-"+string(panel))
	h.attr("class", "bground "+class)
	h.attr("style", "display: "+display)
	h.attr("data-attr-style", fmt.Sprintf("$panels.%s ? 'display: block' : 'display: none'", panel))
	h.raw(`><div class="content">`)
	closeButton(h, panel)
	h.raw(`<div class="modal-body">`)
}

func closePanel(h *html) { h.raw("</div></div></div>") }

func renderFormPanel(h *html, state PageState) {
	openPanel(h, signup.PanelForm, "modal-form", state)
	renderSignupForm(h, state)
	closePanel(h)
}

func renderThanksPanel(h *html, state PageState) {
	openPanel(h, signup.PanelThanks, "modal-thanks", state)
	h.raw(`<p class="thanks-text">Merci pour votre inscription</p>`)
	postForm(h, "/modal/thanks/close", "close-form", func(h *html) {
		h.raw(`<button type="submit" class="btn-submit button btn-close">Fermer</button>`)
	})
	closePanel(h)
}

func renderHead(h *html, title string) {
	h.raw(`<!DOCTYPE html><html lang="fr"><head><meta charset="UTF-8">`)
	h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
	h.raw("<title>")
	h.text(title)
	h.raw("</title>")
	h.raw(`<script type="module"`)
	h.attr("src", datastarScript)
	h.raw("></script></head>")
}

// Page renders the landing page with both modal panels.
func Page(state PageState) templ.Component {
	return component(func(h *html) {
		renderHead(h, "GameOn")
		signals, err := json.Marshal(state.signals())
		if err != nil {
			h.err = err
			return
		}
		h.raw("<body")
		h.attr("data-signals", string(signals))
		h.raw(`><div id="toast"></div><main><div class="hero-section"><div class="hero-content">`)
		h.raw(`<h1 class="hero-headline">Marathon national<br>de jeux vidéos</h1>`)
		h.raw(`<p class="hero-text">Vous aimez jouer ? Notre prochain évènement gaming est ouvert aux réservations... Places limitées !</p>`)
		postForm(h, "/modal/open", "open-form", func(h *html) {
			h.raw(`<button type="submit" class="btn-signup modal-btn">je m'inscris</button>`)
		})
		h.raw("</div></div>")
		renderFormPanel(h, state)
		renderThanksPanel(h, state)
		h.raw("</main></body></html>")
	})
}

// ErrorPage is the full page shown for failed regular requests.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return component(func(h *html) {
		renderHead(h, "GameOn")
		h.raw(`<body><main class="error-page"><h1>`)
		h.text(fmt.Sprintf("%d", p.StatusCode))
		h.raw("</h1><p>")
		h.text(p.Error)
		h.raw("</p>")
		if p.RequestID != "" {
			h.raw(`<p class="request-id">`)
			h.text(p.RequestID)
			h.raw("</p>")
		}
		h.raw(`<a href="/">Retour</a></main></body></html>`)
	})
}

// ErrorToast is patched inside #toast for failed Datastar requests.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return component(func(h *html) {
		h.raw(`<p class="toast" role="alert">`)
		h.text(p.Message)
		h.raw("</p>")
	})
}
