package mocks

// mockgen rules for generating mocks for exported interfaces (reflection mode).
//go:generate sh -c "mockgen -package=handle -destination=$GOPATH/src/$PACKAGE/handle/handle_mock.go $PACKAGE/handle Destroyer"
