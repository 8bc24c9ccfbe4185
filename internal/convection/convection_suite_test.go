package convection_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestConvection(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Convection Suite")
}
