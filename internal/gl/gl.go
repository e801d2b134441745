// SPDX-License-Identifier: Unlicense OR MIT

package gl

type Enum uint

const (
	ACCUM_BUFFER_BIT                          = 0x200
	BACK                                      = 0x0405
	BLEND                                     = 0xbe2
	CLAMP_TO_EDGE                             = 0x812f
	COLOR_ATTACHMENT0                         = 0x8ce0
	COLOR_BUFFER_BIT                          = 0x4000
	CULL_FACE                                 = 0xb44
	DEPTH_ATTACHMENT                          = 0x8d00
	DEPTH_BUFFER_BIT                          = 0x100
	DEPTH_COMPONENT16                         = 0x81a5
	DEPTH_COMPONENT24                         = 0x81a6
	DEPTH_COMPONENT32F                        = 0x8cac
	DEPTH_TEST                                = 0xb71
	DST_COLOR                                 = 0x306
	FLOAT                                     = 0x1406
	FRAMEBUFFER                               = 0x8d40
	FRAMEBUFFER_BINDING                       = 0x8ca6
	FRAMEBUFFER_COMPLETE                      = 0x8cd5
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT         = 0x8cd6
	FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER        = 0x8cdb
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT = 0x8cd7
	FRAMEBUFFER_INCOMPLETE_MULTISAMPLE        = 0x8d56
	FRAMEBUFFER_INCOMPLETE_READ_BUFFER        = 0x8cdc
	FRAMEBUFFER_UNSUPPORTED                   = 0x8cdd
	FRONT                                     = 0x0404
	FRONT_AND_BACK                            = 0x0408
	HALF_FLOAT                                = 0x140b
	LINEAR                                    = 0x2601
	MAX_COLOR_ATTACHMENTS                     = 0x8cdf
	MAX_DRAW_BUFFERS                          = 0x8824
	MAX_TEXTURE_SIZE                          = 0xd33
	MIRRORED_REPEAT                           = 0x8370
	NEAREST                                   = 0x2600
	NO_ERROR                                  = 0x0
	ONE                                       = 0x1
	ONE_MINUS_SRC_ALPHA                       = 0x303
	PACK_ALIGNMENT                            = 0xd05
	R16F                                      = 0x822d
	R32F                                      = 0x822e
	R8                                        = 0x8229
	READ_BUFFER                               = 0xc02
	RED                                       = 0x1903
	RENDERBUFFER                              = 0x8d41
	RENDERBUFFER_BINDING                      = 0x8ca7
	RENDERER                                  = 0x1f01
	REPEAT                                    = 0x2901
	RG                                        = 0x8227
	RG16F                                     = 0x822f
	RG32F                                     = 0x8230
	RG8                                       = 0x822b
	RGB                                       = 0x1907
	RGB16F                                    = 0x881b
	RGB32F                                    = 0x8815
	RGB8                                      = 0x8051
	RGBA                                      = 0x1908
	RGBA16F                                   = 0x881a
	RGBA32F                                   = 0x8814
	RGBA8                                     = 0x8058
	SRC_ALPHA                                 = 0x302
	TEXTURE_2D                                = 0xde1
	TEXTURE_BINDING_2D                        = 0x8069
	TEXTURE_MAG_FILTER                        = 0x2800
	TEXTURE_MIN_FILTER                        = 0x2801
	TEXTURE_WRAP_S                            = 0x2802
	TEXTURE_WRAP_T                            = 0x2803
	UNPACK_ALIGNMENT                          = 0xcf5
	UNSIGNED_BYTE                             = 0x1401
	VERSION                                   = 0x1f02
	VIEWPORT                                  = 0xba2
	ZERO                                      = 0x0
)
