package conn

import (
	"crypto/md5"
	"fmt"

	mcnet "voxelwire/internal/server/net"
	"voxelwire/internal/server/packet"
	"voxelwire/internal/server/world"
)

// offlineUUID derives the name-based UUID (version 3) clients expect from
// offline-mode servers.
func offlineUUID(name string) [16]byte {
	uuid := md5.Sum([]byte("OfflinePlayer:" + name))
	uuid[6] = uuid[6]&0x0f | 0x30
	uuid[8] = uuid[8]&0x3f | 0x80
	return uuid
}

func (c *Connection) handleLogin(packetID int32, data []byte) error {
	if packetID != 0x00 {
		return fmt.Errorf("expected login start packet 0x00, got 0x%02X", packetID)
	}

	var start packet.LoginStart
	if err := mcnet.Unmarshal(data, &start); err != nil {
		return fmt.Errorf("unmarshal login start: %w", err)
	}

	c.log.Info("login start", "username", start.Name)

	uuid := offlineUUID(start.Name)
	if start.UUID != nil {
		uuid = *start.UUID
	}

	if c.cfg.CompressionThreshold >= 0 {
		if err := c.writePacket(&packet.SetCompression{
			Threshold: int32(c.cfg.CompressionThreshold),
		}); err != nil {
			return fmt.Errorf("send set compression: %w", err)
		}
		c.compression = c.cfg.CompressionThreshold
	}

	if err := c.writePacket(&packet.LoginSuccess{
		UUID:     uuid,
		Username: start.Name,
	}); err != nil {
		return fmt.Errorf("send login success: %w", err)
	}

	if err := c.streamChunks(); err != nil {
		return fmt.Errorf("stream chunks: %w", err)
	}

	c.log.Info("chunk stream complete, closing")
	c.cancel()
	return nil
}

// streamChunks builds and sends chunk packets for a square of columns around
// the origin. Every chunk is assembled fresh and discarded once written.
func (c *Connection) streamChunks() error {
	enc := world.NewSectionEncoder(c.registry)
	r := int32(c.cfg.ViewDistance)

	for cx := -r; cx <= r; cx++ {
		for cz := -r; cz <= r; cz++ {
			ch := world.NewStubChunk(cx, cz)
			p, err := packet.BuildChunkData(enc, ch)
			if err != nil {
				return fmt.Errorf("build chunk (%d,%d): %w", cx, cz, err)
			}
			if err := c.writePacket(p); err != nil {
				return fmt.Errorf("write chunk (%d,%d): %w", cx, cz, err)
			}
		}
	}
	return nil
}
