package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/loopstack33/admin-panel-functional-apis/pkg/common"
)

// Digester turns a plaintext password into a stored digest and checks a
// candidate against one. The scheme is process-wide configuration; stored
// credentials must match whichever scheme the deployment selected.
type Digester interface {
	Digest(plain string) (string, error)
	Match(plain, stored string) bool
}

// Md5Digester reproduces the legacy unsalted MD5 scheme the stored user
// rows were written with. It is weak and kept only for compatibility
// with existing credential rows; new deployments should select bcrypt.
type Md5Digester struct{}

func (Md5Digester) Digest(plain string) (string, error) {
	return common.Md5Hash(plain), nil
}

func (Md5Digester) Match(plain, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(common.Md5Hash(plain)), []byte(stored)) == 1
}

// BcryptDigester is the salted, slow alternative. Selecting it requires
// re-provisioning stored password_hash values.
type BcryptDigester struct{}

func (BcryptDigester) Digest(plain string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (BcryptDigester) Match(plain, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}

// NewDigester returns the digester for the configured scheme name,
// defaulting to md5 for any unrecognized value.
func NewDigester(scheme string) Digester {
	if scheme == "bcrypt" {
		return BcryptDigester{}
	}
	return Md5Digester{}
}
