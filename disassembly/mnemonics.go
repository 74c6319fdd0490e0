package disassembly

// format strings for each opcode of the 65C02. the operand is inserted with
// fmt.Sprintf(). the width of the operand verb indicates the length of the
// instruction: %02x is a two byte instruction, %04x is a three byte
// instruction. the zero page relative instructions (opcode $xf) use both
var mnemonics = [256]string{
	"brk ", "ora ($%02x,x)", "nop ", "nop ", "tsb $%02x", "ora $%02x", "asl $%02x", "rmb0 $%02x",
	"php ", "ora #$%02x", "asl a", "nop ", "tsb $%04x", "ora $%04x", "asl $%04x", "bbr0 $%02x, $%04x",
	"bpl $%02x", "ora ($%02x),y", "ora ($%02x)", "nop ", "trb $%02x", "ora $%02x,x", "asl $%02x,x", "rmb1 $%02x",
	"clc ", "ora $%04x,y", "inc a", "nop ", "trb $%04x", "ora $%04x,x", "asl $%04x,x", "bbr1 $%02x, $%04x",
	"jsr $%04x", "and ($%02x,x)", "nop ", "nop ", "bit $%02x", "and $%02x", "rol $%02x", "rmb2 $%02x",
	"plp ", "and #$%02x", "rol a", "nop ", "bit $%04x", "and $%04x", "rol $%04x", "bbr2 $%02x, $%04x",
	"bmi $%02x", "and ($%02x),y", "and ($%02x)", "nop ", "bit $%02x,x", "and $%02x,x", "rol $%02x,x", "rmb3 $%02x",
	"sec ", "and $%04x,y", "dec a", "nop ", "bit $%04x,x", "and $%04x,x", "rol $%04x,x", "bbr3 $%02x, $%04x",
	"rti ", "eor ($%02x,x)", "nop ", "nop ", "nop ", "eor $%02x", "lsr $%02x", "rmb4 $%02x",
	"pha ", "eor #$%02x", "lsr a", "nop ", "jmp $%04x", "eor $%04x", "lsr $%04x", "bbr4 $%02x, $%04x",
	"bvc $%02x", "eor ($%02x),y", "eor ($%02x)", "nop ", "nop ", "eor $%02x,x", "lsr $%02x,x", "rmb5 $%02x",
	"cli ", "eor $%04x,y", "phy ", "nop ", "nop ", "eor $%04x,x", "lsr $%04x,x", "bbr5 $%02x, $%04x",
	"rts ", "adc ($%02x,x)", "nop ", "nop ", "stz $%02x", "adc $%02x", "ror $%02x", "rmb6 $%02x",
	"pla ", "adc #$%02x", "ror a", "nop ", "jmp ($%04x)", "adc $%04x", "ror $%04x", "bbr6 $%02x, $%04x",
	"bvs $%02x", "adc ($%02x),y", "adc ($%02x)", "nop ", "stz $%02x,x", "adc $%02x,x", "ror $%02x,x", "rmb7 $%02x",
	"sei ", "adc $%04x,y", "ply ", "nop ", "jmp ($%04x,x)", "adc $%04x,x", "ror $%04x,x", "bbr7 $%02x, $%04x",
	"bra $%02x", "sta ($%02x,x)", "nop ", "nop ", "sty $%02x", "sta $%02x", "stx $%02x", "smb0 $%02x",
	"dey ", "bit #$%02x", "txa ", "nop ", "sty $%04x", "sta $%04x", "stx $%04x", "bbs0 $%02x, $%04x",
	"bcc $%02x", "sta ($%02x),y", "sta ($%02x)", "nop ", "sty $%02x,x", "sta $%02x,x", "stx $%02x,y", "smb1 $%02x",
	"tya ", "sta $%04x,y", "txs ", "nop ", "stz $%04x", "sta $%04x,x", "stz $%04x,x", "bbs1 $%02x, $%04x",
	"ldy #$%02x", "lda ($%02x,x)", "ldx #$%02x", "nop ", "ldy $%02x", "lda $%02x", "ldx $%02x", "smb2 $%02x",
	"tay ", "lda #$%02x", "tax ", "nop ", "ldy $%04x", "lda $%04x", "ldx $%04x", "bbs2 $%02x, $%04x",
	"bcs $%02x", "lda ($%02x),y", "lda ($%02x)", "nop ", "ldy $%02x,x", "lda $%02x,x", "ldx $%02x,y", "smb3 $%02x",
	"clv ", "lda $%04x,y", "tsx ", "nop ", "ldy $%04x,x", "lda $%04x,x", "ldx $%04x,y", "bbs3 $%02x, $%04x",
	"cpy #$%02x", "cmp ($%02x,x)", "nop ", "nop ", "cpy $%02x", "cmp $%02x", "dec $%02x", "smb4 $%02x",
	"iny ", "cmp #$%02x", "dex ", "wai ", "cpy $%04x", "cmp $%04x", "dec $%04x", "bbs4 $%02x, $%04x",
	"bne $%02x", "cmp ($%02x),y", "cmp ($%02x)", "nop ", "nop ", "cmp $%02x,x", "dec $%02x,x", "smb5 $%02x",
	"cld ", "cmp $%04x,y", "phx ", "dbg ", "nop ", "cmp $%04x,x", "dec $%04x,x", "bbs5 $%02x, $%04x",
	"cpx #$%02x", "sbc ($%02x,x)", "nop ", "nop ", "cpx $%02x", "sbc $%02x", "inc $%02x", "smb6 $%02x",
	"inx ", "sbc #$%02x", "nop ", "nop ", "cpx $%04x", "sbc $%04x", "inc $%04x", "bbs6 $%02x, $%04x",
	"beq $%02x", "sbc ($%02x),y", "sbc ($%02x)", "nop ", "nop ", "sbc $%02x,x", "inc $%02x,x", "smb7 $%02x",
	"sed ", "sbc $%04x,y", "plx ", "nop ", "nop ", "sbc $%04x,x", "inc $%04x,x", "bbs7 $%02x, $%04x",
}
