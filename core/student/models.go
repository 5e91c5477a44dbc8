package student

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/campuslite/campuslite/core"
)

// MaxImageSize is the upper bound on an uploaded student image.
const MaxImageSize = 2 << 20 // 2 MiB

type Student struct {
	ID        string `json:"id"`
	StudentID string `json:"studentId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
	Course    string `json:"course"`
	Image     string `json:"image,omitempty"` // URL or inline data URL
}

// NewStudent contains information needed to create a new Student.
type NewStudent struct {
	Name      string `json:"name" validate:"required"`
	StudentID string `json:"studentId" validate:"required"`
	Email     string `json:"email" validate:"required,email_"`
	Age       int    `json:"age" validate:"required,gte=1,lte=150"`
	Course    string `json:"course" validate:"required"`
	Image     string `json:"image"`
}

func (ns *NewStudent) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	ns.StudentID = core.CleanString(ns.StudentID)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.Course = core.CleanString(ns.Course)
	return core.TranslateValidationError(core.Validate.Struct(ns))
}

// UpdateStudent defines what information may be provided to modify an existing
// Student. All fields except the id are replaced, so the same rules apply as
// on creation.
type UpdateStudent struct {
	Name      string `json:"name" validate:"required"`
	StudentID string `json:"studentId" validate:"required"`
	Email     string `json:"email" validate:"required,email_"`
	Age       int    `json:"age" validate:"required,gte=1,lte=150"`
	Course    string `json:"course" validate:"required"`
	Image     string `json:"image"`
}

func (us *UpdateStudent) Validate() error {
	us.Name = core.CleanString(us.Name)
	us.StudentID = core.CleanString(us.StudentID)
	us.Email = core.CleanString(us.Email, true /* lower */)
	us.Course = core.CleanString(us.Course)
	return core.TranslateValidationError(core.Validate.Struct(us))
}

// ImageUpload is a raw image attached to a student form. Validate rejects it
// before it ever becomes the student's image value.
type ImageUpload struct {
	Filename string
	Content  []byte
}

func (iu *ImageUpload) Validate() error {
	mtype := mimetype.Detect(iu.Content)
	if len(iu.Content) == 0 || !strings.HasPrefix(mtype.String(), "image/") {
		return core.NewValidationError(errNotAnImage, core.FieldError{Field: "image", Error: "please select an image file"})
	}
	if len(iu.Content) > MaxImageSize {
		return core.NewValidationError(errImageTooBig, core.FieldError{Field: "image", Error: "image size should be less than 2MB"})
	}
	return nil
}

// DataURL inlines the upload as a base64 data URL, ready to be stored as
// Student.Image. Validate must have passed first.
func (iu *ImageUpload) DataURL() string {
	return "data:" + mimetype.Detect(iu.Content).String() + ";base64," + base64.StdEncoding.EncodeToString(iu.Content)
}

// generateID builds a collision-resistant id from the current time plus a
// random suffix. No uniqueness check is made against existing ids; the id
// space is large enough that collisions are negligible at this scale.
func generateID() string {
	suffix := make([]byte, 6)
	_, _ = rand.Read(suffix)
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + hex.EncodeToString(suffix)
}
