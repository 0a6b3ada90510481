package httputil

import (
	"net/url"
	"reflect"
)

// GetURLFields checks which query parameters of filter are set in url.
//
// queryFields contains the names of all set fields that can be passed to
// a gorm Where statement to filter for them, including zero values.
// Fields tagged with filterField:"false" are processed by the caller and
// only contained in setFields.
//
// setFields contains the names of all fields set in the query string.
func GetURLFields(url *url.URL, filter any) ([]any, []string) {
	var queryFields []any
	var setFields []string

	query := url.Query()
	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i)
		param := field.Tag.Get("form")

		if param == "" || !query.Has(param) {
			continue
		}

		setFields = append(setFields, field.Name)
		if field.Tag.Get("filterField") != "false" {
			queryFields = append(queryFields, field.Name)
		}
	}

	return queryFields, setFields
}
