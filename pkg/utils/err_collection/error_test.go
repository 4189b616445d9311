package errcollection

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestErrorCollection(t *testing.T) {
	Convey("When using ErrorCollection", t, func() {
		var errCollection ErrorCollection

		Convey("When no error was passed, GetErrIfAny should return nil", func() {
			So(errCollection.GetErrIfAny(), ShouldBeNil)
		})

		Convey("When a nil error was passed, GetErrIfAny should return nil", func() {
			errCollection.Add(nil)
			So(errCollection.GetErrIfAny(), ShouldBeNil)
		})

		Convey("When we pass one error, GetErrIfAny should return error with exact message", func() {
			errCollection.Add(errors.New("test error"))
			So(errCollection.GetErrIfAny(), ShouldNotBeNil)
			So(errCollection.GetErrIfAny().Error(), ShouldEqual, "test error")
		})

		Convey("When we pass multiple errors, GetErrIfAny should return error with combined messages", func() {
			errCollection.Add(errors.New("test error"))
			errCollection.Add(nil)
			errCollection.Add(errors.New("test error1"))
			errCollection.Add(errors.New("test error2"))
			So(errCollection.GetErrIfAny(), ShouldNotBeNil)
			So(errCollection.GetErrIfAny().Error(), ShouldEqual, "test error; test error1; test error2")
		})
	})
}
