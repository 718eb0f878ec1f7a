// chunkdump assembles chunk packets and writes the framed bytes to a file,
// for diffing against captures or feeding to protocol tooling.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	mcnet "voxelwire/internal/server/net"
	"voxelwire/internal/server/packet"
	"voxelwire/internal/server/world"
	"voxelwire/pkg/gamedata"
)

func main() {
	app := &cli.App{
		Name:  "chunkdump",
		Usage: "serialize chunk packets to a file",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "x", Usage: "chunk x coordinate"},
			&cli.IntFlag{Name: "z", Usage: "chunk z coordinate"},
			&cli.IntFlag{Name: "radius", Usage: "also dump chunks within this radius"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "chunks.bin", Usage: "output file"},
			&cli.StringFlag{Name: "data-dir", Usage: "registry data directory (empty = built-in)"},
			&cli.IntFlag{Name: "compress", Value: -1, Usage: "compression threshold in bytes (-1 = uncompressed frames)"},
		},
		Action: dump,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dump(c *cli.Context) error {
	registry := gamedata.Builtin()
	if dir := c.String("data-dir"); dir != "" {
		loaded, err := gamedata.LoadDir(dir)
		if err != nil {
			return err
		}
		registry = loaded
	}

	out, err := os.OpenFile(c.String("out"), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	enc := world.NewSectionEncoder(registry)
	cx, cz := int32(c.Int("x")), int32(c.Int("z"))
	r := int32(c.Int("radius"))
	threshold := c.Int("compress")

	count := 0
	for x := cx - r; x <= cx+r; x++ {
		for z := cz - r; z <= cz+r; z++ {
			ch := world.NewStubChunk(x, z)
			p, err := packet.BuildChunkData(enc, ch)
			if err != nil {
				return fmt.Errorf("build chunk (%d,%d): %w", x, z, err)
			}

			body, err := p.MarshalPacket()
			if err != nil {
				return fmt.Errorf("marshal chunk (%d,%d): %w", x, z, err)
			}

			if threshold >= 0 {
				err = mcnet.WriteCompressedRawPacket(out, threshold, p.PacketID(), body)
			} else {
				err = mcnet.WriteRawPacket(out, p.PacketID(), body)
			}
			if err != nil {
				return fmt.Errorf("write chunk (%d,%d): %w", x, z, err)
			}
			count++
		}
	}

	fmt.Printf("wrote %d chunk packet(s) to %s\n", count, c.String("out"))
	return nil
}
