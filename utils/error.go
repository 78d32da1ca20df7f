package utils

import "errors"

var ErrorNotGCSURI = errors.New("not a gs:// uri")
