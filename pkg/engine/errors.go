package engine

import "errors"

var ErrNoDataset = errors.New("engine has no dataset path")
