package cpp

import "errors"

var errNilModel = errors.New("cpp renderer: model is nil")
