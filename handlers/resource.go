package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"jamjam-resort-api/models"
	"jamjam-resort-api/services"
)

// Resource serves the uniform CRUD routes of one collection.
type Resource struct {
	h      *Handler
	repo   *services.Repository
	noun   string
	plural string
	param  string

	// request, when set, is bound from the create body first so its binding tags can reject
	// incomplete requests with requestMsg.
	request    func() interface{}
	requestMsg string
	normalize  func(models.Document) error
}

func (h *Handler) resource(repo *services.Repository, noun, plural string) *Resource {
	return &Resource{h: h, repo: repo, noun: noun, plural: plural, param: "id"}
}

func (r *Resource) keyedBy(param string) *Resource {
	r.param = param
	return r
}

// Param is the route parameter holding the record key.
func (r *Resource) Param() string {
	return r.param
}

func (r *Resource) requires(request func() interface{}, msg string) *Resource {
	r.request, r.requestMsg = request, msg
	return r
}

func (r *Resource) normalizes(fn func(models.Document) error) *Resource {
	r.normalize = fn
	return r
}

func (r *Resource) notFound() string {
	return r.noun + " not found"
}

func (r *Resource) failure(verb string, plural bool) string {
	if plural {
		return "Failed to " + verb + " " + r.plural
	}
	return "Failed to " + verb + " " + strings.ToLower(r.noun)
}

// bindDocument reads the JSON body as a free-form record. The body is cached so typed
// request structs can be bound from it too.
func bindDocument(c *gin.Context) (models.Document, bool) {
	var body map[string]interface{}
	if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
		badRequest(c, "Request body must be a JSON object")
		return nil, false
	}
	if body == nil {
		body = map[string]interface{}{}
	}
	return models.Document(body), true
}

// numericFields converts the named attributes, when present and non-empty, to numbers.
func numericFields(names ...string) func(models.Document) error {
	return func(d models.Document) error {
		for _, name := range names {
			v, ok := d[name]
			if !ok || v == nil || v == "" {
				continue
			}
			n, ok := models.ToNumber(v)
			if !ok {
				return fmt.Errorf("%w: %s must be a number", models.ErrValidation, name)
			}
			d[name] = n
		}
		return nil
	}
}

// List returns every record.
func (r *Resource) List(c *gin.Context) {
	docs, err := r.repo.List(c.Request.Context())
	if err != nil {
		r.h.fail(c, err, r.notFound(), r.failure("get", true))
		return
	}
	c.JSON(http.StatusOK, docs)
}

// Get returns one record by key.
func (r *Resource) Get(c *gin.Context) {
	doc, err := r.repo.Get(c.Request.Context(), c.Param(r.param))
	if err != nil {
		r.h.fail(c, err, r.notFound(), r.failure("get", false))
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ByCustomer returns a customer's records, newest first.
func (r *Resource) ByCustomer(c *gin.Context) {
	docs, err := r.repo.ListByCustomer(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		r.h.fail(c, err, r.notFound(), "Failed to get customer "+r.plural)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// Create inserts a record from the body.
func (r *Resource) Create(c *gin.Context) {
	if r.request != nil {
		if err := c.ShouldBindBodyWith(r.request(), binding.JSON); err != nil {
			badRequest(c, r.requestMsg)
			return
		}
	}
	body, ok := bindDocument(c)
	if !ok {
		return
	}
	if r.normalize != nil {
		if err := r.normalize(body); err != nil {
			badRequest(c, err.Error())
			return
		}
	}
	doc, err := r.repo.Create(c.Request.Context(), body)
	if err != nil {
		r.h.fail(c, err, r.notFound(), r.failure("create", false))
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// Update applies the body's fields to an existing record.
func (r *Resource) Update(c *gin.Context) {
	body, ok := bindDocument(c)
	if !ok {
		return
	}
	if r.normalize != nil {
		if err := r.normalize(body); err != nil {
			badRequest(c, err.Error())
			return
		}
	}
	doc, err := r.repo.Update(c.Request.Context(), c.Param(r.param), body)
	if err != nil {
		r.h.fail(c, err, r.notFound(), r.failure("update", false))
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Delete removes a record. Missing records are not an error.
func (r *Resource) Delete(c *gin.Context) {
	if err := r.repo.Delete(c.Request.Context(), c.Param(r.param)); err != nil {
		r.h.fail(c, err, r.notFound(), r.failure("delete", false))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": r.noun + " deleted"})
}
