package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Load 从本地文件或者 http(s) 地址读取 roles.json
// 任何错误都意味着目录不可用，调用方不应继续进行角色分配
func Load(ctx context.Context, source string) (*Catalog, error) {
	data, err := ReadSource(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("load roles: %w", err)
	}

	var roles []Role
	if err := json.Unmarshal(data, &roles); err != nil {
		return nil, fmt.Errorf("decode roles: %w", err)
	}

	c, err := New(roles)
	if err != nil {
		return nil, fmt.Errorf("load roles: %w", err)
	}

	zap.L().Info(
		"角色目录加载成功",
		zap.String("source", source),
		zap.Int("roles", c.Len()),
	)

	return c, nil
}

// ReadSource 读取数据集的原始字节，rolelists.json 也复用这里
func ReadSource(ctx context.Context, source string) ([]byte, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, fmt.Errorf("source is required")
	}

	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		return os.ReadFile(source)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP error! status: %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
