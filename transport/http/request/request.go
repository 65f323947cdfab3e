// Package request holds the parsing steps shared by every handler.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"skyline/shared/constant"
	gDto "skyline/shared/dto"
	"skyline/shared/failure"
	"skyline/shared/validator"
	"strings"

	"github.com/go-chi/chi/v5"
)

// ID reads the {id} path parameter. Ids are UUIDs, so anything else cannot name a record
// and is reported with the resource's not found message.
func ID(r *http.Request, notFound string) (string, error) {
	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateVar(id, "required,uuid"); err != nil {
		return "", failure.NotFound(notFound) //nolint:wrapcheck
	}

	return id, nil
}

// Body decodes a JSON body, normalises it when the type knows how, and validates it.
func Body[T any](r *http.Request, data *T) error {
	return validator.Validate(r.Body, data) //nolint:wrapcheck
}

// Image reads an upload either from a multipart "image" part or from a JSON data URI.
// The caller closes ImageFile when the upload is multipart.
func Image(r *http.Request) (upload gDto.ImageUpload, err error) {
	if strings.HasPrefix(r.Header.Get(constant.RequestHeaderContentType), constant.ContentTypeMultipartFormData) {
		if err = r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
			return upload, failure.BadRequest(err) //nolint:wrapcheck
		}

		file, header, err := r.FormFile(constant.FormFile)
		if err != nil && !errors.Is(err, http.ErrMissingFile) {
			return upload, failure.BadRequest(err) //nolint:wrapcheck
		}

		upload.Image = header
		upload.ImageFile = file
	} else if err = json.NewDecoder(r.Body).Decode(&upload); err != nil {
		return upload, failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&upload); err != nil {
		if upload.ImageFile != nil {
			_ = upload.ImageFile.Close()
		}

		return upload, err //nolint:wrapcheck
	}

	return upload, nil
}
