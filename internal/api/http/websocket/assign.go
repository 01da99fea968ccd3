package websocket

import (
	"encoding/json"
	"time"

	"lmm-be/internal/service"
	"lmm-be/internal/state"

	"github.com/gorilla/websocket"
	"github.com/kataras/iris/v12"
	"go.uber.org/zap"
)

// LiveAssign 让页面在输入变化时实时重新分配
// 每条 Assign 请求独立完成一次分配，连接之间不共享任何随机数状态
func LiveAssign(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		conn, err := upgrader.Upgrade(
			ctx.ResponseWriter(),
			ctx.Request(),
			nil,
		)
		if err != nil {
			zap.L().Error("升级到WebSocket失败", zap.Error(err))
			ctx.StatusCode(iris.StatusBadRequest)
			return
		}

		defer conn.Close()

		clientIP := ctx.RemoteAddr()

		conn.SetReadLimit(MAX_MESSAGE_SIZE)
		conn.SetReadDeadline(time.Now().Add(HEARTBEAT_TIMEOUT))
		conn.SetPongHandler(heartbeatHandler(conn))

		respCh := make(chan ResponseWrapper, 16)

		// 写协程的退出信号
		writeDoneCh := make(chan struct{})
		defer close(writeDoneCh)

		// 写入协程，连接上的所有写操作都在这里完成
		go func() {
			ticker := time.NewTicker(HEARTBEAT_INTERVAL)
			defer ticker.Stop()

			for {
				select {
				case <-writeDoneCh:
					zap.L().Debug(
						"WebSocket写入协程退出",
						zap.String("client_ip", clientIP),
					)
					return

				case <-ticker.C:
					conn.SetWriteDeadline(time.Now().Add(HEARTBEAT_TIMEOUT))
					if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
						zap.L().Warn(
							"发送心跳失败",
							zap.String("client_ip", clientIP),
							zap.Error(err),
						)
						return
					}

				case resp := <-respCh:
					conn.SetWriteDeadline(time.Now().Add(HEARTBEAT_TIMEOUT))
					if err := conn.WriteJSON(resp); err != nil {
						zap.L().Warn(
							"发送消息失败",
							zap.String("client_ip", clientIP),
							zap.Error(err),
						)
						return
					}
				}
			}
		}()

		zap.L().Info("实时分配连接建立", zap.String("client_ip", clientIP))

		// 读取协程（主协程）
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(
					err,
					websocket.CloseGoingAway,
					websocket.CloseNormalClosure,
				) {
					zap.L().Warn(
						"读取消息失败",
						zap.String("client_ip", clientIP),
						zap.Error(err),
					)
				}

				break
			}

			resp := HandleMessage(appState.AssignSvc, msg)

			select {
			case respCh <- resp:
			case <-time.After(5 * time.Second):
				zap.L().Warn(
					"响应通道阻塞，关闭连接",
					zap.String("client_ip", clientIP),
				)
				return
			}
		}

		zap.L().Info("实时分配连接断开", zap.String("client_ip", clientIP))
	}
}

// HandleMessage 把一条客户端消息转换为响应，不涉及连接本身
func HandleMessage(svc *service.AssignmentService, msg []byte) ResponseWrapper {
	var wrapper RequestWrapper

	if err := json.Unmarshal(msg, &wrapper); err != nil {
		return WrapErrResponse("", "invalid request format")
	}

	req := TryUnwrapAssignRequest(wrapper)
	if req == nil {
		return WrapErrResponse(wrapper.RequestID, "unsupported request type: "+wrapper.ReqType)
	}

	resp, err := svc.Assign(*req)
	if err != nil {
		return WrapErrResponse(wrapper.RequestID, err.Error())
	}

	return WrapResponse(RESP_ASSIGN_RESULT, wrapper.RequestID, resp)
}
