package httpx

import (
	"strings"

	"github.com/Gunvolt24/storefront/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// PartitionHeader — заголовок, которым клиент выбирает свой раздел хранилища.
const PartitionHeader = "X-Storage-Partition"

// PartitionMiddleware кладёт раздел хранилища клиента в контекст запроса.
// Без заголовка используется ctxmeta.DefaultPartition.
func PartitionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		partition := strings.TrimSpace(c.GetHeader(PartitionHeader))
		if partition == "" {
			partition = ctxmeta.DefaultPartition
		}

		ctx := ctxmeta.WithPartition(c.Request.Context(), partition)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
