package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fjod/go_cart/storefront/internal/config"
	"github.com/fjod/go_cart/storefront/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"STOREFRONT_SEED_PATH", "STOREFRONT_SHIPPING_FEE", "STOREFRONT_LOG_FILE", "STOREFRONT_LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append(args, "--log-file", ""))
	err := root.Execute()
	return out.String(), err
}

func TestCartCommand(t *testing.T) {
	out, err := run(t, "cart")
	require.NoError(t, err)

	assert.Contains(t, out, "Váy Dự Tiệc Sang Trọng")
	assert.Contains(t, out, "Giày Thể Thao Nữ")
	assert.Contains(t, out, "1.570.000đ")
	assert.Contains(t, out, "Thanh Toán (1.600.000đ)")
	assert.Contains(t, out, "Giỏ hàng (2)")
}

func TestCartCommand_ShippingFeeFlag(t *testing.T) {
	out, err := run(t, "cart", "--shipping-fee", "0")
	require.NoError(t, err)

	assert.Contains(t, out, "Thanh Toán (1.570.000đ)")
}

func TestCartCommand_NegativeShippingFee(t *testing.T) {
	_, err := run(t, "cart", "--shipping-fee=-5")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestCatalogCommand(t *testing.T) {
	out, err := run(t, "catalog")
	require.NoError(t, err)

	assert.Contains(t, out, "6 sản phẩm")
	assert.Contains(t, out, "Túi Xách Thời Trang")
	assert.Contains(t, out, "1.200.000đ")
}

func TestCatalogCommand_SingleProduct(t *testing.T) {
	out, err := run(t, "catalog", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "Áo Phao Nam")
	assert.Contains(t, out, "750.000đ")
	assert.NotContains(t, out, "sản phẩm")
}

func TestCatalogCommand_UnknownProduct(t *testing.T) {
	_, err := run(t, "catalog", "99")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	_, err = run(t, "catalog", "abc")
	assert.ErrorContains(t, err, "invalid product id")
}

func TestSeedFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
shipping_fee: 10.000đ
cart:
  - {id: 1, name: Khăn Lụa, size: F, color: Xanh, price: 250.000đ, quantity: 2}
`), 0o600))

	out, err := run(t, "cart", "--seed", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Khăn Lụa")
	assert.Contains(t, out, "Thanh Toán (510.000đ)")
}

func TestSeedFlag_DefaultShippingFee(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
cart:
  - {id: 1, name: Khăn Lụa, size: F, color: Xanh, price: 250.000đ, quantity: 1}
`), 0o600))

	out, err := run(t, "cart", "--seed", path)
	require.NoError(t, err)
	assert.Contains(t, out, "30.000đ")
	assert.Contains(t, out, "Thanh Toán (280.000đ)")

	out, err = run(t, "cart", "--seed", path, "--shipping-fee", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Thanh Toán (250.000đ)")
}

func TestSeedFlag_MissingFile(t *testing.T) {
	_, err := run(t, "cart", "--seed", filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorContains(t, err, "failed to read seed file")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "catalog", "--log-level", "chatty")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLogFile(t *testing.T) {
	for _, key := range []string{"STOREFRONT_SEED_PATH", "STOREFRONT_SHIPPING_FEE", "STOREFRONT_LOG_FILE", "STOREFRONT_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	logPath := filepath.Join(t.TempDir(), "storefront.log")

	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"cart", "--log-file", logPath, "--log-level", "debug"})
	require.NoError(t, root.Execute())

	raw, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"session ready"`)
	assert.Contains(t, string(raw), `"session_id"`)
	assert.Contains(t, string(raw), `"cart_lines":2`)
	assert.Contains(t, string(raw), `"shipping_fee":"30000"`)
}
